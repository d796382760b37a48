package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
)

var (
	playerID  string
	draftID   string
	draftName string
)

var createDraftCmd = &cobra.Command{
	Use:   "create-draft",
	Short: "Create a new character draft",
	Long:  `Create a new character draft, replacing the player's previous one.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.DraftResponse
		req := &v1alpha1.CreateDraftRequest{PlayerID: playerID, Name: draftName}
		if err := callCharacter(v1alpha1.MethodCreateDraft, req, &resp); err != nil {
			return err
		}

		fmt.Printf("✅ Character draft created successfully!\n\n")
		printDraft(resp.Draft)
		fmt.Printf("\n💡 Next steps:\n")
		fmt.Printf("1. Choose race: charforge client select-race --draft-id %s --race dwarf\n", resp.Draft.ID)
		fmt.Printf("2. Choose class: charforge client select-class --draft-id %s --class fighter\n", resp.Draft.ID)
		fmt.Printf("3. Continue with background and ability scores, then advance through the steps\n")
		fmt.Printf("4. Finalize: charforge client finalize --draft-id %s\n", resp.Draft.ID)
		return nil
	},
}

var getDraftCmd = &cobra.Command{
	Use:   "get-draft",
	Short: "Show a draft by ID or the player's current draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.DraftResponse
		req := &v1alpha1.GetDraftRequest{DraftID: draftID, PlayerID: playerID}
		if err := callCharacter(v1alpha1.MethodGetDraft, req, &resp); err != nil {
			return err
		}
		printDraft(resp.Draft)
		return nil
	},
}

var deleteDraftCmd = &cobra.Command{
	Use:   "delete-draft",
	Short: "Discard a draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.MessageResponse
		if err := callCharacter(v1alpha1.MethodDeleteDraft, &v1alpha1.DraftRequest{DraftID: draftID}, &resp); err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	},
}

var updateNameCmd = &cobra.Command{
	Use:   "update-name",
	Short: "Set the character name on a draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.DraftResponse
		req := &v1alpha1.UpdateNameRequest{DraftID: draftID, Name: draftName}
		if err := callCharacter(v1alpha1.MethodUpdateName, req, &resp); err != nil {
			return err
		}
		printDraft(resp.Draft)
		return nil
	},
}

func init() {
	createDraftCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	createDraftCmd.Flags().StringVar(&draftName, "name", "", "Character name")
	_ = createDraftCmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	getDraftCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID")
	getDraftCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID, used when no draft ID is given")

	updateNameCmd.Flags().StringVar(&draftName, "name", "", "Character name (required)")
	_ = updateNameCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{
		deleteDraftCmd, updateNameCmd,
		selectRaceCmd, selectClassCmd, selectSkillsCmd, selectBackgroundCmd, selectEquipmentCmd,
		setMethodCmd, setScoreCmd, assignSlotCmd, rerollCmd,
		advanceCmd, retreatCmd, previewCmd, finalizeCmd,
	} {
		cmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
		_ = cmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	}
}

func printDraft(draft *dnd5e.CharacterDraft) {
	if draft == nil {
		return
	}
	fmt.Printf("Draft ID: %s\n", draft.ID)
	fmt.Printf("Player ID: %s\n", draft.PlayerID)
	if draft.Name != "" {
		fmt.Printf("Name: %s\n", draft.Name)
	}
	fmt.Printf("Step: %s\n", draft.Step)
	if draft.RaceID != "" {
		fmt.Printf("Race: %s\n", draft.RaceID)
	}
	if draft.ClassID != "" {
		fmt.Printf("Class: %s\n", draft.ClassID)
	}
	if len(draft.ClassSkills) > 0 {
		fmt.Printf("Class skills: %s\n", strings.Join(draft.ClassSkills, ", "))
	}
	if draft.BackgroundID != "" {
		fmt.Printf("Background: %s\n", draft.BackgroundID)
	}
	if draft.EquipmentOption != dnd5e.EquipmentOptionNone {
		fmt.Printf("Equipment option: %s\n", draft.EquipmentOption)
	}
	if draft.Generation != nil {
		fmt.Printf("Generation: %s\n", draft.Generation.Kind())
	}
	fmt.Printf("Expires At: %d\n", draft.ExpiresAt)
}
