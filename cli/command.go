// Package cli provides the shared cobra scaffolding for cellstate
// binaries: standard flags and flag-aware logger construction.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tabulab/cellstate/logging"
)

// CommandOptions holds common options for cellstate commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with standard cellstate flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}
	AddStandardFlags(cmd.PersistentFlags())
	return cmd
}

// AddStandardFlags registers the flags every cellstate tool carries.
func AddStandardFlags(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "Enable verbose logging")
	fs.Bool("json", false, "Output logs in JSON format")
	fs.StringP("config", "c", "", "Path to cellstate.yml config file")
}

// GetLogger creates a logger based on command flags
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	entry := logging.NewLogger("cellstate-cli")
	logger := entry.Logger

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}
