package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/irahardianto/stagehand/internal/platform/logger"
)

// ErrToolFailed matches every *ToolError via errors.Is.
var ErrToolFailed = errors.New("git invocation failed")

// ToolError reports a git invocation that could not run or exited non-zero.
type ToolError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}

func (e *ToolError) Unwrap() []error {
	return []error{ErrToolFailed, e.Err}
}

// ExecService implements Service by running git commands via os/exec.
type ExecService struct {
	// WorkDir is the repository root all commands run in.
	WorkDir string
}

// NewExecService creates a new ExecService rooted at the given repository root.
func NewExecService(root string) *ExecService {
	return &ExecService{WorkDir: root}
}

// FindRoot returns the top-level directory of the repository containing dir.
func FindRoot(ctx context.Context, dir string) (string, error) {
	out, err := (&ExecService{WorkDir: dir}).runGit(ctx, nil, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("locating repository root: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// runGit executes a git command, feeding stdin when non-nil, and returns stdout.
func (s *ExecService) runGit(ctx context.Context, stdin io.Reader, args ...string) (string, error) {
	logger.FromContext(ctx).Debug("running git", "args", args, "dir", s.WorkDir)

	cmd := exec.CommandContext(ctx, "git", args...) // #nosec G204 -- args are controlled by the application, not user input
	cmd.Dir = s.WorkDir
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), &ToolError{Args: args, Stderr: stderr.String(), Err: err}
	}

	return stdout.String(), nil
}
