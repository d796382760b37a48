package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
)

var listRacesCmd = &cobra.Command{
	Use:   "list-races",
	Short: "List available races",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.ListRacesResponse
		if err := callCharacter(v1alpha1.MethodListRaces, &v1alpha1.EmptyRequest{}, &resp); err != nil {
			return err
		}

		fmt.Printf("Found %d races:\n\n", len(resp.Races))
		for _, race := range resp.Races {
			fmt.Printf("%s (%s)\n", race.Name, race.ID)
			fmt.Printf("  Speed: %d  Size: %s\n", race.Speed, race.Size)
			if len(race.AbilityScoreIncrease) > 0 {
				fmt.Printf("  Ability increases: %v\n", race.AbilityScoreIncrease)
			}
		}
		return nil
	},
}

var listClassesCmd = &cobra.Command{
	Use:   "list-classes",
	Short: "List available classes with their subclasses",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.ListClassesResponse
		if err := callCharacter(v1alpha1.MethodListClasses, &v1alpha1.EmptyRequest{}, &resp); err != nil {
			return err
		}

		fmt.Printf("Found %d classes:\n\n", len(resp.Classes))
		for _, entry := range resp.Classes {
			if entry.Class == nil {
				continue
			}
			fmt.Printf("%s (%s) d%d\n", entry.Name, entry.ID, entry.HitDie)
			fmt.Printf("  Skills: choose %d from %s\n", entry.SkillsToChoose, strings.Join(entry.AvailableSkills, ", "))
			for _, sub := range entry.Subclasses {
				fmt.Printf("  - %s\n", sub.Name)
			}
		}
		return nil
	},
}

var listBackgroundsCmd = &cobra.Command{
	Use:   "list-backgrounds",
	Short: "List available backgrounds",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.ListBackgroundsResponse
		if err := callCharacter(v1alpha1.MethodListBackgrounds, &v1alpha1.EmptyRequest{}, &resp); err != nil {
			return err
		}

		fmt.Printf("Found %d backgrounds:\n\n", len(resp.Backgrounds))
		for _, bg := range resp.Backgrounds {
			fmt.Printf("%s (%s)\n", bg.Name, bg.ID)
			if len(bg.SkillProficiencies) > 0 {
				fmt.Printf("  Skills: %s\n", strings.Join(bg.SkillProficiencies, ", "))
			}
		}
		return nil
	},
}
