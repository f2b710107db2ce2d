package formatter

import (
	"fmt"
	"strings"

	"github.com/irahardianto/stagehand/internal/engine/diff"
)

// ANSI color codes.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiDim    = "\033[2m"
)

// CLIFormatter renders listings and previews for a terminal.
type CLIFormatter struct {
	Color bool
}

// NewCLIFormatter creates a new CLIFormatter.
func NewCLIFormatter(color bool) *CLIFormatter {
	return &CLIFormatter{Color: color}
}

// Format returns a human-readable listing of the changes.
func (f *CLIFormatter) Format(listing Listing) string {
	var b strings.Builder

	if len(listing.Files) == 0 && len(listing.Untracked) == 0 {
		b.WriteString("No pending changes\n")
		return b.String()
	}

	if len(listing.Files) > 0 {
		b.WriteString(f.colorize("Changed files", ansiBold) + "\n")
	}
	for _, s := range listing.Files {
		b.WriteString(fmt.Sprintf("  %s %s", f.statusTag(s), f.displayPath(s)))
		switch {
		case s.Binary:
			b.WriteString(" " + f.colorize("(binary)", ansiDim))
		case s.Hunks == 0:
			b.WriteString(" " + f.colorize("(no hunks)", ansiDim))
		default:
			b.WriteString(fmt.Sprintf(" %s %s %s",
				f.colorize(fmt.Sprintf("+%d", s.Added), ansiGreen),
				f.colorize(fmt.Sprintf("-%d", s.Removed), ansiRed),
				f.colorize(fmt.Sprintf("%d hunk(s)", s.Hunks), ansiDim)))
		}
		b.WriteString("\n")
	}

	if len(listing.Untracked) > 0 {
		b.WriteString(f.colorize("Untracked files", ansiBold) + "\n")
		for _, p := range listing.Untracked {
			b.WriteString("  " + f.colorize("?", ansiYellow) + " " + p + "\n")
		}
	}

	return b.String()
}

// Hunk renders a hunk preview: the title line followed by the hunk body,
// coloured like `git diff`.
func (f *CLIFormatter) Hunk(h *diff.Hunk) string {
	if !f.Color {
		return h.Format()
	}

	var b strings.Builder
	b.WriteString(f.colorize(h.Title(), ansiBold))
	if h.Binary {
		return b.String()
	}
	for _, line := range h.Lines {
		b.WriteString("\n")
		b.WriteString(f.colorLine(line))
	}
	return b.String()
}

// UntrackedFile renders the preview line for an untracked file question.
func (f *CLIFormatter) UntrackedFile(path string) string {
	return f.colorize("Untracked file: ", ansiYellow) + f.colorize(path, ansiBold)
}

// Patch colours a whole patch for display.
func (f *CLIFormatter) Patch(patch string) string {
	if !f.Color || patch == "" {
		return patch
	}
	lines := diff.SplitText(patch)
	for i, line := range lines {
		lines[i] = f.colorLine(line)
	}
	return strings.Join(lines, "\n") + "\n"
}

func (f *CLIFormatter) colorLine(line string) string {
	switch {
	case strings.HasPrefix(line, "diff --git "):
		return f.colorize(line, ansiBold)
	case strings.HasPrefix(line, "+++ "), strings.HasPrefix(line, "--- "):
		return f.colorize(line, ansiBold)
	case strings.HasPrefix(line, "@"):
		return f.colorize(line, ansiCyan)
	case strings.HasPrefix(line, "+"):
		return f.colorize(line, ansiGreen)
	case strings.HasPrefix(line, "-"):
		return f.colorize(line, ansiRed)
	}
	return line
}

func (f *CLIFormatter) statusTag(s FileSummary) string {
	switch {
	case s.Deleted:
		return f.colorize("D", ansiRed)
	case s.NewFile:
		return f.colorize("A", ansiGreen)
	case s.Renamed:
		return f.colorize("R", ansiCyan)
	}
	return f.colorize("M", ansiYellow)
}

func (f *CLIFormatter) displayPath(s FileSummary) string {
	if s.OldPath != "" {
		return s.OldPath + " -> " + s.Path
	}
	return s.Path
}

func (f *CLIFormatter) colorize(s, code string) string {
	if !f.Color {
		return s
	}
	return code + s + ansiReset
}
