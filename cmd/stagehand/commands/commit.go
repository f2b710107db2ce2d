package commands

import (
	"github.com/spf13/cobra"
)

var (
	flagMessage string
	flagSuggest bool
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Pick files and hunks interactively, then commit them",
	Long: `Offer each untracked file and then each hunk of the working tree diff.
Accepted files are staged, accepted hunks are applied to the index, and a
commit is recorded. Without -m the message is read from the terminal, or
drafted by Gemini when --suggest is given and an API key is configured.

Answering d (done) at any question ends all questioning, including the hunk
questions when given for an untracked file; what was accepted is committed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSession(cmd.Context(), SessionOpts{
			Message: flagMessage,
			Suggest: flagSuggest,
		})
	},
}

func init() {
	commitCmd.Flags().StringVarP(&flagMessage, "message", "m", "", "Use the given commit message")
	commitCmd.Flags().BoolVar(&flagSuggest, "suggest", false, "Draft a commit message with Gemini")
	rootCmd.AddCommand(commitCmd)
}
