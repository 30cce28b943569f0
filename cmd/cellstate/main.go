package main

import (
	"os"

	"github.com/tabulab/cellstate/cli"
	"github.com/tabulab/cellstate/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"cellstate",
		"Inspect tabular data with per-cell validation and correction state",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewVersionCmd())
	rootCmd.AddCommand(cmd.NewViewCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
