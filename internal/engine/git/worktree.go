package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/irahardianto/stagehand/internal/engine/diff"
	"github.com/irahardianto/stagehand/internal/platform/logger"
)

// UntrackedFiles lists untracked files that are not excluded by .gitignore.
func (s *ExecService) UntrackedFiles(ctx context.Context) ([]string, error) {
	out, err := s.runGit(ctx, nil, "ls-files", "--others", "--exclude-standard", "-z")
	if err != nil {
		return nil, fmt.Errorf("listing untracked files: %w", err)
	}

	var files []string
	for _, p := range strings.Split(out, "\x00") {
		if p != "" {
			files = append(files, p)
		}
	}

	logger.FromContext(ctx).Debug("untracked files listed", "count", len(files))
	return files, nil
}

// StageFile adds path to the index. Staging an already staged file is a no-op.
func (s *ExecService) StageFile(ctx context.Context, path string) error {
	if _, err := s.runGit(ctx, nil, "add", "--", path); err != nil {
		return fmt.Errorf("staging %s: %w", path, err)
	}
	return nil
}

// WorkingDiff returns the unstaged changes of tracked files. Prefixes are
// pinned so diff.noprefix and diff.mnemonicPrefix settings do not leak in.
func (s *ExecService) WorkingDiff(ctx context.Context) ([]string, error) {
	out, err := s.runGit(ctx, nil, "diff", "--binary", "--no-color", "--no-ext-diff",
		"--src-prefix=a/", "--dst-prefix=b/")
	if err != nil {
		return nil, fmt.Errorf("getting working tree diff: %w", err)
	}
	return diff.SplitText(out), nil
}

// StagedDiff returns what the next commit would record, without binary payloads.
func (s *ExecService) StagedDiff(ctx context.Context) (string, error) {
	out, err := s.runGit(ctx, nil, "diff", "--cached", "--no-color", "--no-ext-diff")
	if err != nil {
		return "", fmt.Errorf("getting staged diff: %w", err)
	}
	return out, nil
}

// ApplyCached applies patch to the index, leaving the working tree untouched.
// git's output is returned as is; on failure the error carries git's stderr.
func (s *ExecService) ApplyCached(ctx context.Context, patch string) (string, error) {
	logger.FromContext(ctx).Debug("applying patch to index", "bytes", len(patch))

	out, err := s.runGit(ctx, strings.NewReader(patch), "apply", "--cached", "-")
	if err != nil {
		return out, fmt.Errorf("applying patch to index: %w", err)
	}
	return out, nil
}
