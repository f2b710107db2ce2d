// Package commands implements the CLI commands for stagehand.
package commands

import (
	"os"

	"github.com/irahardianto/stagehand/internal/platform/logger"
	"github.com/spf13/cobra"
)

// Global flag values accessible to all commands.
var (
	flagJSON    bool
	flagVerbose bool
	flagNoColor bool
)

// rootCmd is the base command for the stagehand CLI.
var rootCmd = &cobra.Command{
	Use:   "stagehand",
	Short: "Interactively pick the changes that go into a commit",
	Long: `Stagehand walks the working tree one change at a time. It offers each
untracked file and then each hunk of the working tree diff, stages only what
you accept, and records a commit with the message you supply.

Answers: y (yes), n (no, the default), a (all remaining), d (done).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l := logger.New(os.Stderr, flagVerbose, flagJSON)
		ctx := logger.WithContext(cmd.Context(), l)
		cmd.SetContext(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output listings and logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command. Returns an error if the command fails.
func Execute() error {
	return rootCmd.Execute()
}
