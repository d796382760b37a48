package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
)

var (
	method  string
	ability string
	score   int
	slot    int
)

var setMethodCmd = &cobra.Command{
	Use:   "set-method",
	Short: "Choose point_buy, standard_array or dice_roll",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.GenerationResponse
		req := &v1alpha1.SetGenerationMethodRequest{DraftID: draftID, Method: method}
		if err := callCharacter(v1alpha1.MethodSetGenerationMethod, req, &resp); err != nil {
			return err
		}
		printEvaluation(resp.Evaluation)
		if roll, ok := resp.Draft.Generation.(*dnd5e.DiceRoll); ok {
			fmt.Printf("Rolled pool: %v\n", roll.Pool)
		}
		return nil
	},
}

var setScoreCmd = &cobra.Command{
	Use:   "set-score",
	Short: "Set one point buy score",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.SetPointBuyScoreResponse
		req := &v1alpha1.SetPointBuyScoreRequest{DraftID: draftID, Ability: ability, Score: score}
		if err := callCharacter(v1alpha1.MethodSetPointBuyScore, req, &resp); err != nil {
			return err
		}
		printPointBuy(resp.Validation)
		return nil
	},
}

var assignSlotCmd = &cobra.Command{
	Use:   "assign-slot",
	Short: "Assign a standard array or dice pool slot to an ability",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.GenerationResponse
		req := &v1alpha1.AssignAbilitySlotRequest{DraftID: draftID, Ability: ability, Slot: slot}
		if err := callCharacter(v1alpha1.MethodAssignAbilitySlot, req, &resp); err != nil {
			return err
		}
		printEvaluation(resp.Evaluation)
		return nil
	},
}

var rerollCmd = &cobra.Command{
	Use:   "reroll",
	Short: "Roll a fresh 4d6 drop lowest pool",
	RunE: func(_ *cobra.Command, _ []string) error {
		var resp v1alpha1.RerollAbilityScoresResponse
		if err := callCharacter(v1alpha1.MethodRerollAbilityScores, &v1alpha1.DraftRequest{DraftID: draftID}, &resp); err != nil {
			return err
		}
		for i, roll := range resp.Rolls {
			fmt.Printf("🎲 Slot %d: %v (dropped %d) = %d\n", i, roll.Kept, roll.Dropped, roll.Total)
		}
		return nil
	},
}

func init() {
	setMethodCmd.Flags().StringVar(&method, "method", "", "Generation method (required)")
	_ = setMethodCmd.MarkFlagRequired("method") // nolint:errcheck // safe to ignore in init

	setScoreCmd.Flags().StringVar(&ability, "ability", "", "Ability name or abbreviation (required)")
	setScoreCmd.Flags().IntVar(&score, "score", 8, "Score between 8 and 15")
	_ = setScoreCmd.MarkFlagRequired("ability") // nolint:errcheck // safe to ignore in init

	assignSlotCmd.Flags().StringVar(&ability, "ability", "", "Ability name or abbreviation (required)")
	assignSlotCmd.Flags().IntVar(&slot, "slot", 0, "Slot index 0-5, or -1 to clear the ability")
	_ = assignSlotCmd.MarkFlagRequired("ability") // nolint:errcheck // safe to ignore in init
}

func printEvaluation(eval *v1alpha1.Evaluation) {
	if eval == nil {
		return
	}
	fmt.Printf("Complete: %v\n", eval.Complete)
	for _, a := range dnd5e.Abilities {
		if v, ok := eval.BaseScores[a]; ok {
			fmt.Printf("  %s: %d\n", a, v)
		}
	}
	for _, r := range eval.Reasons {
		fmt.Printf("  - %s\n", r)
	}
	printPointBuy(eval.PointBuy)
}

func printPointBuy(pb *v1alpha1.PointBuy) {
	if pb == nil {
		return
	}
	fmt.Printf("Points used: %d, remaining: %d, valid: %v\n", pb.PointsUsed, pb.PointsRemaining, pb.Valid)
	for _, v := range pb.Violations {
		fmt.Printf("  - %s: %s\n", v.Ability, v.Reason)
	}
}
