package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/irahardianto/stagehand/internal/engine/config"
	"github.com/irahardianto/stagehand/internal/engine/diff"
	"github.com/irahardianto/stagehand/internal/engine/formatter"
	"github.com/irahardianto/stagehand/internal/engine/git"
	"github.com/irahardianto/stagehand/internal/engine/llm"
	"github.com/irahardianto/stagehand/internal/engine/selection"
	"github.com/irahardianto/stagehand/internal/platform/logger"
)

// ErrEmptyMessage is returned when the commit message is empty.
var ErrEmptyMessage = errors.New("aborting commit due to empty commit message")

// SessionOpts holds per-invocation options for a session.
type SessionOpts struct {
	// Message is used as the commit message when non-empty.
	Message string
	// Suggest asks the drafter for a message before prompting.
	Suggest bool
	// DryRun prints the rebuilt patch instead of applying and committing it.
	DryRun bool
}

// Session runs one interactive staging round with injected dependencies.
type Session struct {
	// Git runs every version control operation.
	Git git.Service

	// Asker answers the selection questions.
	Asker selection.Asker

	// Input reads the commit message when none was given.
	Input LineReader

	// Drafter suggests commit messages. Nil disables suggestions.
	Drafter llm.Drafter

	// Config holds the loaded configuration.
	Config *config.Config

	// Formatter renders previews.
	Formatter *formatter.CLIFormatter

	// Stdout receives the patch in dry runs and git's output.
	Stdout io.Writer

	// Stderr receives previews and status notices.
	Stderr io.Writer
}

// Execute runs the session: untracked files, then hunks, then the commit.
func (s *Session) Execute(ctx context.Context, opts SessionOpts) error {
	log := logger.FromContext(ctx)
	operation := "commit"
	if opts.DryRun {
		operation = "patch"
	}
	log.Info("stagehand session started", "operation", operation)

	// 1. Offer untracked files. Staging them only makes sense for a real commit.
	var staged []string
	stopped := false
	if !opts.DryRun {
		var err error
		staged, stopped, err = s.stageUntracked(ctx)
		if err != nil {
			return err
		}
	}

	// 2. Offer every hunk in file order, unless the user is already done.
	var diffs []*diff.Diff
	var res selection.Result
	if stopped {
		log.Debug("hunk questions skipped, user answered done")
	} else {
		var err error
		diffs, res, err = s.selectHunks(ctx)
		if err != nil {
			return err
		}
	}

	// 3. Rebuild the patch from the kept hunks.
	patch := diff.FilterDiffs(diffs)
	if patch != "" && s.Config.ShouldValidate() {
		if err := diff.Validate(patch); err != nil {
			return err
		}
	}

	if opts.DryRun {
		if patch == "" {
			fmt.Fprintln(s.Stderr, "Nothing selected")
			return nil
		}
		fmt.Fprint(s.Stdout, s.Formatter.Patch(patch))
		return nil
	}

	// 4. Stage the kept hunks.
	if patch != "" {
		out, err := s.Git.ApplyCached(ctx, patch)
		if err != nil {
			return fmt.Errorf("staging selected hunks: %w", err)
		}
		if out != "" {
			fmt.Fprint(s.Stderr, out)
		}
	}

	if len(staged) == 0 && patch == "" {
		fmt.Fprintln(s.Stderr, "Nothing selected, no commit created")
		return nil
	}

	// 5. Show what will be committed and record it.
	status, err := s.Git.Status(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(s.Stdout, status)

	message, err := s.commitMessage(ctx, opts)
	if err != nil {
		return err
	}

	out, err := s.Git.Commit(ctx, message)
	if err != nil {
		return err
	}
	fmt.Fprint(s.Stdout, out)

	log.Info("stagehand session finished", "files", len(staged), "hunks", res.Kept)
	return nil
}

// selectHunks parses the working tree diff and asks about every hunk.
func (s *Session) selectHunks(ctx context.Context) ([]*diff.Diff, selection.Result, error) {
	lines, err := s.Git.WorkingDiff(ctx)
	if err != nil {
		return nil, selection.Result{}, err
	}
	diffs, err := diff.ParseAll(lines)
	if err != nil {
		return nil, selection.Result{}, fmt.Errorf("parsing working tree diff: %w", err)
	}
	for _, d := range diffs {
		if !d.Selectable() {
			fmt.Fprintf(s.Stderr, "Skipping %s: no content changes to stage\n", d.Header.Path)
		}
	}

	hunks := diff.SelectableHunks(diffs)
	items := make([]selection.Item, len(hunks))
	for i, h := range hunks {
		items[i] = selection.Item{
			Preview: s.Formatter.Hunk(h),
			Prompt:  "Stage this hunk",
			Keep:    h.Select,
		}
	}
	res, err := selection.Run(ctx, s.Asker, items, s.Stderr)
	if err != nil {
		return nil, res, err
	}
	logger.FromContext(ctx).Debug("hunk selection finished", "hunks", len(hunks), "kept", res.Kept, "stopped", res.Stopped)
	return diffs, res, nil
}

// stageUntracked offers each untracked file and stages the accepted ones.
// stopped reports that the user answered done, which ends all questioning.
func (s *Session) stageUntracked(ctx context.Context) (staged []string, stopped bool, err error) {
	if s.Config.Untracked.Skip {
		return nil, false, nil
	}

	files, err := s.Git.UntrackedFiles(ctx)
	if err != nil {
		return nil, false, err
	}
	files = config.FilterIgnored(files, s.Config.Untracked.Ignore)

	var selected []string
	items := make([]selection.Item, len(files))
	for i, path := range files {
		items[i] = selection.Item{
			Preview: s.Formatter.UntrackedFile(path),
			Prompt:  "Stage this file",
			Keep:    func() { selected = append(selected, path) },
		}
	}
	res, err := selection.Run(ctx, s.Asker, items, s.Stderr)
	if err != nil {
		return nil, false, err
	}

	for _, path := range selected {
		if err := s.Git.StageFile(ctx, path); err != nil {
			return nil, false, err
		}
	}
	return selected, res.Stopped, nil
}

// commitMessage picks the message from the flag, the drafter or the prompt.
func (s *Session) commitMessage(ctx context.Context, opts SessionOpts) (string, error) {
	if msg := strings.TrimSpace(opts.Message); msg != "" {
		return msg, nil
	}

	if opts.Suggest {
		msg, ok, err := s.suggest(ctx)
		if err != nil {
			return "", err
		}
		if ok {
			return msg, nil
		}
	}

	line, err := s.Input.Line("Commit message: ")
	if err != nil {
		return "", fmt.Errorf("reading commit message: %w", err)
	}
	msg := strings.TrimSpace(line)
	if msg == "" {
		return "", ErrEmptyMessage
	}
	return msg, nil
}

// suggest drafts a message for the staged changes and asks whether to use it.
// Drafting failures fall back to the prompt.
func (s *Session) suggest(ctx context.Context) (string, bool, error) {
	log := logger.FromContext(ctx)

	if s.Drafter == nil {
		fmt.Fprintln(s.Stderr, "No Gemini API key configured, cannot suggest a message")
		return "", false, nil
	}

	staged, err := s.Git.StagedDiff(ctx)
	if err != nil {
		log.Warn("reading staged diff for suggestion failed", "error", err)
		return "", false, nil
	}

	msg, err := s.Drafter.Draft(ctx, staged)
	if err != nil {
		log.Warn("drafting commit message failed", "error", err)
		fmt.Fprintln(s.Stderr, "Could not draft a commit message")
		return "", false, nil
	}

	fmt.Fprintf(s.Stderr, "Suggested message:\n\n%s\n\n", msg)
	answer, err := s.Asker.Ask(ctx, "Use this message", 1, 1)
	if err != nil {
		return "", false, err
	}
	if answer == selection.AnswerYes || answer == selection.AnswerAll {
		return msg, true, nil
	}
	return "", false, nil
}
