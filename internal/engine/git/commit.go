package git

import (
	"context"
	"fmt"
)

// Status returns `git status` output.
func (s *ExecService) Status(ctx context.Context) (string, error) {
	out, err := s.runGit(ctx, nil, "status")
	if err != nil {
		return "", fmt.Errorf("getting status: %w", err)
	}
	return out, nil
}

// Commit records the index with the given message.
func (s *ExecService) Commit(ctx context.Context, message string) (string, error) {
	out, err := s.runGit(ctx, nil, "commit", "-m", message)
	if err != nil {
		return out, fmt.Errorf("committing: %w", err)
	}
	return out, nil
}
