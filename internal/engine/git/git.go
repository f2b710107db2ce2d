// Package git is the gateway to the git command line: it lists untracked
// files, produces the working tree diff, stages files and patches, shows
// status and commits.
package git

import (
	"context"
)

// Service abstracts git operations for testability.
type Service interface {
	// UntrackedFiles returns untracked, non-ignored paths relative to the root.
	UntrackedFiles(ctx context.Context) ([]string, error)
	// StageFile adds a whole file to the index.
	StageFile(ctx context.Context, path string) error
	// WorkingDiff returns the diff between index and working tree as lines,
	// with binary patches enabled and colour disabled.
	WorkingDiff(ctx context.Context) ([]string, error)
	// StagedDiff returns the textual diff between HEAD and the index.
	StagedDiff(ctx context.Context) (string, error)
	// ApplyCached applies a patch to the index only.
	ApplyCached(ctx context.Context, patch string) (string, error)
	// Status returns the human-readable `git status` output.
	Status(ctx context.Context) (string, error)
	// Commit records the index as a new commit.
	Commit(ctx context.Context, message string) (string, error)
}
