package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
)

var (
	characterID string
	outputDir   string
)

var getCharacterCmd = &cobra.Command{
	Use:   "get-character",
	Short: "Show a finalized character",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.CharacterResponse
		req := &v1alpha1.CharacterRequest{CharacterID: characterID}
		if err := callCharacter(v1alpha1.MethodGetCharacter, req, &resp); err != nil {
			return err
		}
		printCharacter(resp.Character)
		return nil
	},
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List a player's characters",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.ListCharactersResponse
		req := &v1alpha1.ListCharactersRequest{PlayerID: playerID}
		if err := callCharacter(v1alpha1.MethodListCharacters, req, &resp); err != nil {
			return err
		}
		fmt.Printf("Found %d characters:\n\n", len(resp.Characters))
		for _, c := range resp.Characters {
			fmt.Printf("%s  %s, level %d %s\n", c.ID, c.Name, c.Level, c.Class)
		}
		return nil
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete-character",
	Short: "Delete a character",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.MessageResponse
		req := &v1alpha1.CharacterRequest{CharacterID: characterID}
		if err := callCharacter(v1alpha1.MethodDeleteCharacter, req, &resp); err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	},
}

var exportSheetCmd = &cobra.Command{
	Use:   "export-sheet",
	Short: "Write a character sheet PDF",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.ExportCharacterSheetResponse
		req := &v1alpha1.CharacterRequest{CharacterID: characterID}
		if err := callCharacter(v1alpha1.MethodExportCharacterSheet, req, &resp); err != nil {
			return err
		}

		path := filepath.Join(outputDir, filepath.Base(resp.Filename))
		if err := os.WriteFile(path, resp.PDF, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("📄 Wrote %s (%d bytes)\n", path, len(resp.PDF))
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{getCharacterCmd, deleteCharacterCmd, exportSheetCmd} {
		cmd.Flags().StringVar(&characterID, "character-id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	}

	listCharactersCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	_ = listCharactersCmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	exportSheetCmd.Flags().StringVar(&outputDir, "out", ".", "Directory to write the PDF into")
}

func printCharacter(c *dnd5e.Character) {
	if c == nil {
		return
	}
	fmt.Printf("Character ID: %s\n", c.ID)
	fmt.Printf("Name: %s\n", c.Name)
	fmt.Printf("Level %d %s %s (%s)\n", c.Level, c.Equipment.Race, c.Class, c.Equipment.Background)
	fmt.Printf("HP %d/%d  AC %d  Initiative %+d  Speed %d\n",
		c.CurrentHP, c.MaxHP, c.Stats.ArmorClass, c.Stats.Initiative, c.Stats.Speed)
	fmt.Printf("STR %d  DEX %d  CON %d  INT %d  WIS %d  CHA %d\n",
		c.Abilities.Strength, c.Abilities.Dexterity, c.Abilities.Constitution,
		c.Abilities.Intelligence, c.Abilities.Wisdom, c.Abilities.Charisma)
	fmt.Printf("Skills: %s\n", strings.Join(c.Skills, ", "))
	fmt.Printf("Equipment: %s\n", strings.Join(c.Equipment.StartingEquipment, ", "))
}
