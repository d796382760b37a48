// Package main is the entry point for the charforge gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charforge/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "charforge",
	Short: "Charforge gRPC Server",
	Long:  `Charforge runs the D&D 5e character creation wizard over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
