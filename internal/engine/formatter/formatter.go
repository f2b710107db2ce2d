// Package formatter renders hunk previews for the interactive prompts and
// summaries of the working tree diff for CLI and JSON output.
package formatter

import (
	"strings"

	"github.com/irahardianto/stagehand/internal/engine/diff"
)

// FileSummary describes one changed file.
type FileSummary struct {
	Path    string `json:"path"`
	OldPath string `json:"old_path,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
	NewFile bool   `json:"new_file,omitempty"`
	Renamed bool   `json:"renamed,omitempty"`
	Binary  bool   `json:"binary,omitempty"`
	Hunks   int    `json:"hunks"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
}

// Listing holds the summary of a whole working tree diff.
type Listing struct {
	Files     []FileSummary `json:"files"`
	Untracked []string      `json:"untracked,omitempty"`
}

// Formatter formats a Listing into a human-readable or machine-readable string.
type Formatter interface {
	Format(listing Listing) string
}

// Summarize builds a Listing from parsed diffs and untracked paths.
func Summarize(diffs []*diff.Diff, untracked []string) Listing {
	l := Listing{Files: make([]FileSummary, 0, len(diffs)), Untracked: untracked}

	for _, d := range diffs {
		s := FileSummary{
			Path:    d.Header.Path,
			Deleted: d.Header.Deleted,
			NewFile: d.Header.NewFile,
			Renamed: d.Header.Renamed,
			Hunks:   len(d.Hunks),
		}
		if d.Header.OldPath != d.Header.Path {
			s.OldPath = d.Header.OldPath
		}

		for _, h := range d.Hunks {
			if h.Binary {
				s.Binary = true
				continue
			}
			for _, line := range h.Lines {
				switch {
				case strings.HasPrefix(line, "+"):
					s.Added++
				case strings.HasPrefix(line, "-"):
					s.Removed++
				}
			}
		}

		l.Files = append(l.Files, s)
	}

	return l
}
