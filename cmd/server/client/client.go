// Package client provides test commands for the charforge gRPC services
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for charforge",
	Long:  `Client commands drive the character creation wizard by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Catalog
	ClientCmd.AddCommand(listRacesCmd, listClassesCmd, listBackgroundsCmd)

	// Drafts
	ClientCmd.AddCommand(createDraftCmd, getDraftCmd, deleteDraftCmd, updateNameCmd)
	ClientCmd.AddCommand(selectRaceCmd, selectClassCmd, selectSkillsCmd, selectBackgroundCmd, selectEquipmentCmd)
	ClientCmd.AddCommand(setMethodCmd, setScoreCmd, assignSlotCmd, rerollCmd)
	ClientCmd.AddCommand(advanceCmd, retreatCmd, previewCmd, finalizeCmd)

	// Characters
	ClientCmd.AddCommand(getCharacterCmd, listCharactersCmd, deleteCharacterCmd, exportSheetCmd)

	// Dice
	ClientCmd.AddCommand(getRollSessionCmd, clearRollSessionCmd)
}

// createClient creates a client over a fresh connection
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// callCharacter runs one CharacterCreation call with the command timeout
func callCharacter(method string, req, resp any) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Character(ctx, method, req, resp); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return nil
}

// callDice runs one DiceService call with the command timeout
func callDice(method string, req, resp any) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Dice(ctx, method, req, resp); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
