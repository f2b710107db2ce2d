package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/irahardianto/stagehand/internal/engine/config"
	"github.com/irahardianto/stagehand/internal/engine/formatter"
	"github.com/irahardianto/stagehand/internal/engine/git"
	"github.com/irahardianto/stagehand/internal/engine/llm"
	"github.com/irahardianto/stagehand/internal/engine/selection"
	"github.com/irahardianto/stagehand/internal/platform/logger"
)

// workspace is the repository a command operates on.
type workspace struct {
	Root   string
	Config *config.Config
	Git    *git.ExecService
}

// openWorkspace locates the repository containing the working directory and
// loads its configuration. The returned context carries a debug logger when
// the configuration asks for verbose output.
func openWorkspace(ctx context.Context) (context.Context, *workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return ctx, nil, fmt.Errorf("getting working directory: %w", err)
	}

	root, err := git.FindRoot(ctx, cwd)
	if err != nil {
		return ctx, nil, fmt.Errorf("not inside a git repository: %w", err)
	}

	cfg, err := config.Load(ctx, root)
	if err != nil {
		return ctx, nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.OutputVerbose && !flagVerbose {
		ctx = logger.WithContext(ctx, logger.New(os.Stderr, true, flagJSON))
	}
	logWorkspace(ctx, root, cfg)

	return ctx, &workspace{Root: root, Config: cfg, Git: git.NewExecService(root)}, nil
}

// logWorkspace records the settings that shape the session. The API key
// itself is never logged.
func logWorkspace(ctx context.Context, root string, cfg *config.Config) {
	logger.FromContext(ctx).Debug("workspace opened",
		"root", root,
		"project_config", filepath.Join(root, config.ProjectFile),
		"validate_patch", cfg.ShouldValidate(),
		"untracked_skip", cfg.Untracked.Skip,
		"untracked_ignore", len(cfg.Untracked.Ignore),
		"gemini_key_set", !cfg.GeminiAPIKey.IsEmpty(),
	)
}

// colorEnabled reports whether output written to the given descriptors
// should be coloured.
func colorEnabled(cfg *config.Config, fds ...uintptr) bool {
	if flagNoColor || !cfg.OutputColor {
		return false
	}
	for _, fd := range fds {
		if !term.IsTerminal(fd) {
			return false
		}
	}
	return true
}

// runSession wires real infrastructure and delegates to Session.Execute.
// This is a composition root: it instantiates production dependencies.
func runSession(ctx context.Context, opts SessionOpts) error {
	ctx, ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	fds := []uintptr{os.Stderr.Fd()}
	if opts.DryRun {
		fds = append(fds, os.Stdout.Fd())
	}

	prompter := selection.NewPrompter(os.Stdin, os.Stderr)

	var drafter llm.Drafter
	if !ws.Config.GeminiAPIKey.IsEmpty() {
		drafter = llm.NewGeminiDrafter(string(ws.Config.GeminiAPIKey), ws.Config.Model, llm.DefaultClientFactory)
	}

	session := &Session{
		Git:       ws.Git,
		Asker:     prompter,
		Input:     prompter,
		Drafter:   drafter,
		Config:    ws.Config,
		Formatter: formatter.NewCLIFormatter(colorEnabled(ws.Config, fds...)),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}

	err = session.Execute(ctx, opts)
	if err != nil {
		log.Debug("session failed", "error", err)
	}
	return err
}
