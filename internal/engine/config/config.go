// Package config loads stagehand settings from the user-level and
// project-level YAML files and the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/irahardianto/stagehand/internal/platform/logger"
	"gopkg.in/yaml.v3"
)

// ProjectFile is the name of the project-level config file at the repository root.
const ProjectFile = ".stagehand.yaml"

// SecretString is a string that is redacted when printed.
type SecretString string

func (s SecretString) String() string {
	return "[REDACTED]"
}

func (s SecretString) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// LogValue keeps the secret out of structured logs.
func (s SecretString) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

// IsEmpty returns true if the secret string is empty.
func (s SecretString) IsEmpty() bool {
	return string(s) == ""
}

// Config holds all stagehand settings.
type Config struct {
	GeminiAPIKey  SecretString    `yaml:"gemini_api_key"`
	Model         string          `yaml:"model"`
	ValidatePatch *bool           `yaml:"validate_patch"`
	Output        OutputConfig    `yaml:"output"`
	Untracked     UntrackedConfig `yaml:"untracked"`
	OutputColor   bool            `yaml:"-"` // derived from Output.Color
	OutputVerbose bool            `yaml:"-"` // derived from Output.Verbose
}

// OutputConfig holds output-related user preferences.
type OutputConfig struct {
	Color   *bool `yaml:"color"`
	Verbose *bool `yaml:"verbose"`
}

// UntrackedConfig controls the untracked file phase.
type UntrackedConfig struct {
	// Skip disables the untracked file questions entirely.
	Skip bool `yaml:"skip"`
	// Ignore lists glob patterns of untracked files never offered.
	Ignore []string `yaml:"ignore"`
}

// ShouldValidate reports whether rebuilt patches are checked before applying.
func (c *Config) ShouldValidate() bool {
	if c.ValidatePatch != nil {
		return *c.ValidatePatch
	}
	return true
}

// Loader handles loading configuration from the file system.
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a new Loader with the given file system.
// Uses os.Getenv for environment variable lookups by default.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs, getenv: os.Getenv}
}

// NewLoaderWithEnv creates a Loader with a custom getenv function for testability.
func NewLoaderWithEnv(fs FileSystem, getenv func(string) string) *Loader {
	return &Loader{fs: fs, getenv: getenv}
}

// Load reads ~/.config/stagehand/config.yaml and then <root>/.stagehand.yaml.
// Keys in the project file override the user file; missing files are skipped.
func (l *Loader) Load(ctx context.Context, root string) (*Config, error) {
	var paths []string
	if home, err := l.fs.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "stagehand", "config.yaml"))
	} else {
		logger.FromContext(ctx).Debug("no home directory, skipping user config", "error", err)
	}
	if root != "" {
		paths = append(paths, filepath.Join(root, ProjectFile))
	}
	return l.LoadFrom(ctx, paths...)
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones, then applies environment overrides and validates the result.
func (l *Loader) LoadFrom(ctx context.Context, paths ...string) (*Config, error) {
	log := logger.FromContext(ctx)
	cfg := defaultConfig()

	for _, path := range paths {
		// [SEC] Clean path
		path = filepath.Clean(path)

		info, err := l.fs.Stat(path)
		if err != nil {
			if l.fs.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("checking config %s: %w", path, err)
		}
		if info.IsDir() {
			log.Warn("config path is a directory, skipping", "path", path)
			continue
		}
		log.Debug("loading config file", "path", path)

		data, err := l.fs.ReadFile(path)
		if err != nil {
			if l.fs.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if cfg.Output.Color != nil {
		cfg.OutputColor = *cfg.Output.Color
	}
	if cfg.Output.Verbose != nil {
		cfg.OutputVerbose = *cfg.Output.Verbose
	}

	applyEnvOverrides(cfg, l.getenv)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads configuration using the real file system.
func Load(ctx context.Context, root string) (*Config, error) {
	return NewLoader(&RealFileSystem{}).Load(ctx, root)
}

func defaultConfig() *Config {
	return &Config{
		OutputColor: true,
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
// The getenv parameter abstracts os.Getenv for testability.
func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if key := getenv("STAGEHAND_GEMINI_KEY"); key != "" {
		cfg.GeminiAPIKey = SecretString(key)
	}

	if model := getenv("STAGEHAND_MODEL"); model != "" {
		cfg.Model = model
	}

	if noColor := getenv("STAGEHAND_NO_COLOR"); noColor != "" {
		// Any truthy value disables color.
		noColor = strings.ToLower(noColor)
		if noColor == "1" || noColor == "true" || noColor == "yes" {
			cfg.OutputColor = false
		}
	}
}

// validate checks the ignore patterns. Returns a joined error so users can
// fix every bad pattern at once.
func validate(cfg *Config) error {
	var errs []error
	for _, p := range cfg.Untracked.Ignore {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, errors.New("untracked.ignore: empty pattern"))
			continue
		}
		if _, err := filepath.Match(p, ""); err != nil {
			errs = append(errs, fmt.Errorf("untracked.ignore: invalid pattern %q: %w", p, err))
		}
	}
	return errors.Join(errs...)
}
