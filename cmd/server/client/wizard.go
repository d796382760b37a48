package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
)

var previewJSON bool

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Move the draft to the next wizard step",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.DraftResponse
		if err := callCharacter(v1alpha1.MethodAdvanceStep, &v1alpha1.DraftRequest{DraftID: draftID}, &resp); err != nil {
			return err
		}
		fmt.Printf("Now at step: %s\n", resp.Draft.Step)
		return nil
	},
}

var retreatCmd = &cobra.Command{
	Use:   "retreat",
	Short: "Move the draft back one wizard step",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.DraftResponse
		if err := callCharacter(v1alpha1.MethodRetreatStep, &v1alpha1.DraftRequest{DraftID: draftID}, &resp); err != nil {
			return err
		}
		fmt.Printf("Now at step: %s\n", resp.Draft.Step)
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the provisional statistics of a draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.PreviewCharacterResponse
		if err := callCharacter(v1alpha1.MethodPreviewCharacter, &v1alpha1.DraftRequest{DraftID: draftID}, &resp); err != nil {
			return err
		}
		if previewJSON {
			return printJSON(&resp)
		}

		if d := resp.Derived; d != nil {
			fmt.Printf("📊 Preview\n")
			for _, a := range dnd5e.Abilities {
				fmt.Printf("  %-13s %2d (%+d)\n", a, d.FinalScores[a], d.Modifiers[a])
			}
			fmt.Printf("  HP %d  AC %d  Initiative %+d  Speed %d  Proficiency %+d\n",
				d.Stats.HitPoints, d.Stats.ArmorClass, d.Stats.Initiative, d.Stats.Speed, d.Stats.ProficiencyBonus)
			for _, sb := range d.SkillBonuses {
				if sb.Proficient {
					fmt.Printf("  %s %+d\n", sb.Skill, sb.Bonus)
				}
			}
		}
		for _, step := range dnd5e.WizardSteps {
			for _, reason := range resp.StepReasons[string(step)] {
				fmt.Printf("⚠️  %s: %s\n", step, reason)
			}
		}
		return nil
	},
}

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Turn the draft into a character",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.FinalizeDraftResponse
		if err := callCharacter(v1alpha1.MethodFinalizeDraft, &v1alpha1.DraftRequest{DraftID: draftID}, &resp); err != nil {
			return err
		}
		fmt.Printf("✅ Character finalized!\n\n")
		printCharacter(resp.Character)
		if !resp.DraftDeleted {
			fmt.Printf("\n⚠️  The draft could not be removed and will expire on its own\n")
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "Print the full preview as JSON")
}
