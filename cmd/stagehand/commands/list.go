package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/irahardianto/stagehand/internal/engine/config"
	"github.com/irahardianto/stagehand/internal/engine/diff"
	"github.com/irahardianto/stagehand/internal/engine/formatter"
	"github.com/irahardianto/stagehand/internal/engine/git"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the changes that would be offered",
	Long: `Print the changed files with their hunk counts and the untracked files
that 'commit' would offer. Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, ws, err := openWorkspace(cmd.Context())
		if err != nil {
			return err
		}

		var fmtr formatter.Formatter
		if flagJSON {
			fmtr = formatter.NewJSONFormatter()
		} else {
			fmtr = formatter.NewCLIFormatter(colorEnabled(ws.Config, os.Stdout.Fd()))
		}
		return writeListing(ctx, ws.Git, ws.Config, fmtr, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// writeListing summarises the pending changes through fmtr.
func writeListing(ctx context.Context, svc git.Service, cfg *config.Config, fmtr formatter.Formatter, out io.Writer) error {
	var untracked []string
	if !cfg.Untracked.Skip {
		files, err := svc.UntrackedFiles(ctx)
		if err != nil {
			return err
		}
		untracked = config.FilterIgnored(files, cfg.Untracked.Ignore)
	}

	lines, err := svc.WorkingDiff(ctx)
	if err != nil {
		return err
	}
	diffs, err := diff.ParseAll(lines)
	if err != nil {
		return fmt.Errorf("parsing working tree diff: %w", err)
	}

	fmt.Fprint(out, fmtr.Format(formatter.Summarize(diffs, untracked)))
	return nil
}
