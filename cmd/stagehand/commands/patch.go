package commands

import (
	"github.com/spf13/cobra"
)

var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Pick hunks interactively and print the resulting patch",
	Long: `Run the hunk selection exactly like 'commit', but print the rebuilt patch
to stdout instead of staging it. Nothing in the repository is modified, and
untracked files are not offered. Questions and previews go to stderr, so the
output can be redirected to a file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSession(cmd.Context(), SessionOpts{DryRun: true})
	},
}

func init() {
	rootCmd.AddCommand(patchCmd)
}
