package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
)

var (
	raceID       string
	classID      string
	skills       []string
	backgroundID string
	option       string
)

var selectRaceCmd = &cobra.Command{
	Use:   "select-race",
	Short: "Choose the draft's race by ID or name",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.SelectRaceResponse
		req := &v1alpha1.SelectRaceRequest{DraftID: draftID, RaceID: raceID}
		if err := callCharacter(v1alpha1.MethodSelectRace, req, &resp); err != nil {
			return err
		}
		fmt.Printf("Race set to %s (speed %d)\n", resp.Race.Name, resp.Race.Speed)
		return nil
	},
}

var selectClassCmd = &cobra.Command{
	Use:   "select-class",
	Short: "Choose the draft's class by ID or name",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.SelectClassResponse
		req := &v1alpha1.SelectClassRequest{DraftID: draftID, ClassID: classID}
		if err := callCharacter(v1alpha1.MethodSelectClass, req, &resp); err != nil {
			return err
		}
		fmt.Printf("Class set to %s (d%d)\n", resp.Class.Name, resp.Class.HitDie)
		if resp.SkillsReset {
			fmt.Println("⚠️  Previously chosen class skills were cleared")
		}
		fmt.Printf("Choose %d skills from: %s\n", resp.Class.SkillsToChoose, strings.Join(resp.Class.AvailableSkills, ", "))
		return nil
	},
}

var selectSkillsCmd = &cobra.Command{
	Use:   "select-skills",
	Short: "Choose the draft's class skills",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.DraftResponse
		req := &v1alpha1.SelectClassSkillsRequest{DraftID: draftID, Skills: skills}
		if err := callCharacter(v1alpha1.MethodSelectClassSkills, req, &resp); err != nil {
			return err
		}
		fmt.Printf("Class skills: %s\n", strings.Join(resp.Draft.ClassSkills, ", "))
		return nil
	},
}

var selectBackgroundCmd = &cobra.Command{
	Use:   "select-background",
	Short: "Choose the draft's background by ID or name",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.SelectBackgroundResponse
		req := &v1alpha1.SelectBackgroundRequest{DraftID: draftID, BackgroundID: backgroundID}
		if err := callCharacter(v1alpha1.MethodSelectBackground, req, &resp); err != nil {
			return err
		}
		fmt.Printf("Background set to %s\n", resp.Background.Name)
		if resp.OptionReset {
			fmt.Println("⚠️  Previously chosen equipment option was cleared")
		}
		if opts := resp.Background.EquipmentOptions; opts != nil {
			fmt.Printf("Option A: %s\n", strings.Join(opts.OptionA, ", "))
			fmt.Printf("Option B: %s\n", strings.Join(opts.OptionB, ", "))
		}
		return nil
	},
}

var selectEquipmentCmd = &cobra.Command{
	Use:   "select-equipment",
	Short: "Choose background equipment option A or B",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.SelectEquipmentOptionResponse
		req := &v1alpha1.SelectEquipmentOptionRequest{DraftID: draftID, Option: strings.ToUpper(option)}
		if err := callCharacter(v1alpha1.MethodSelectEquipmentOption, req, &resp); err != nil {
			return err
		}
		fmt.Printf("Equipment: %s\n", strings.Join(resp.Items, ", "))
		return nil
	},
}

func init() {
	selectRaceCmd.Flags().StringVar(&raceID, "race", "", "Race ID or name (required)")
	_ = selectRaceCmd.MarkFlagRequired("race") // nolint:errcheck // safe to ignore in init

	selectClassCmd.Flags().StringVar(&classID, "class", "", "Class ID or name (required)")
	_ = selectClassCmd.MarkFlagRequired("class") // nolint:errcheck // safe to ignore in init

	selectSkillsCmd.Flags().StringSliceVar(&skills, "skill", nil, "Skill key or name, repeatable")

	selectBackgroundCmd.Flags().StringVar(&backgroundID, "background", "", "Background ID or name (required)")
	_ = selectBackgroundCmd.MarkFlagRequired("background") // nolint:errcheck // safe to ignore in init

	selectEquipmentCmd.Flags().StringVar(&option, "option", "", "A or B (required)")
	_ = selectEquipmentCmd.MarkFlagRequired("option") // nolint:errcheck // safe to ignore in init
}
