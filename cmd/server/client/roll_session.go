package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
)

var getRollSessionCmd = &cobra.Command{
	Use:   "get-roll-session [entity-id] [context]",
	Short: "Get an existing dice roll session",
	Long: `Retrieve the stored dice rolls for an entity. The context defaults to
ability_scores, the pool rolled for a draft. Example:

  get-roll-session draft-123`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		req := rollSessionRequest(args)

		var resp v1alpha1.RollSessionResponse
		if err := callDice(v1alpha1.MethodGetRollSession, req, &resp); err != nil {
			return err
		}

		session := resp.Session
		fmt.Printf("\n📜 Roll Session:\n")
		fmt.Printf("================\n")
		fmt.Printf("Created: %s\n", session.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Expires: %s\n", session.ExpiresAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Total Rolls: %d\n", len(session.Rolls))

		for i, roll := range session.Rolls {
			fmt.Printf("\n🎲 Roll %d:\n", i+1)
			fmt.Printf("  Roll ID: %s\n", roll.RollID)
			fmt.Printf("  Notation: %s\n", roll.Notation)
			fmt.Printf("  Kept Dice: %v\n", roll.Dice)
			fmt.Printf("  Total: %d\n", roll.Total)
			if len(roll.Dropped) > 0 {
				fmt.Printf("  Dropped: %v\n", roll.Dropped)
			}
			if roll.Description != "" {
				fmt.Printf("  Description: %s\n", roll.Description)
			}
		}
		return nil
	},
}

var clearRollSessionCmd = &cobra.Command{
	Use:   "clear-roll-session [entity-id] [context]",
	Short: "Remove a dice roll session",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		var resp v1alpha1.ClearRollSessionResponse
		if err := callDice(v1alpha1.MethodClearRollSession, rollSessionRequest(args), &resp); err != nil {
			return err
		}
		fmt.Printf("%s (%d rolls)\n", resp.Message, resp.RollsCleared)
		return nil
	},
}

func rollSessionRequest(args []string) *v1alpha1.RollSessionRequest {
	req := &v1alpha1.RollSessionRequest{EntityID: args[0]}
	if len(args) > 1 {
		req.Context = args[1]
	}
	return req
}
