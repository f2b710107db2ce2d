// Package diff models the unified diff produced by `git diff --binary` as
// files (Diff) made of a preamble (Header) and change regions (Hunk), and
// rebuilds a patch containing only the hunks that were selected.
package diff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDiff is returned when a file segment has no `diff --git` line
// or names no path.
var ErrMalformedDiff = errors.New("malformed diff")

const (
	gitHeaderPrefix  = "diff --git "
	deletedPrefix    = "deleted "
	newFilePrefix    = "new file mode"
	renameFromPrefix = "rename from "
	renameToPrefix   = "rename to "
	copyToPrefix     = "copy to "
	oldFilePrefix    = "--- "
	newFileLine      = "+++ "
	devNull          = "/dev/null"
)

// Header is the preamble of one file's diff.
type Header struct {
	// Path is the post-image path (the b/ side).
	Path string
	// OldPath is the pre-image path (the a/ side).
	OldPath string
	Deleted bool
	NewFile bool
	Renamed bool
	// Lines holds the preamble verbatim.
	Lines []string
}

// ParseHeader builds a Header from the preamble lines of a file segment.
//
// The `diff --git` line is ambiguous when a path contains " b/", so paths
// named by the `---`/`+++` and `rename` lines take precedence over it.
func ParseHeader(lines []string) (*Header, error) {
	h := &Header{Lines: lines}
	found := false
	var minusPath, plusPath, fromPath, toPath string

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, gitHeaderPrefix):
			found = true
			if oldPath, newPath, ok := splitGitPaths(strings.TrimPrefix(line, gitHeaderPrefix)); ok {
				h.OldPath, h.Path = oldPath, newPath
			}
		case strings.HasPrefix(line, deletedPrefix):
			h.Deleted = true
		case strings.HasPrefix(line, newFilePrefix):
			h.NewFile = true
		case strings.HasPrefix(line, renameFromPrefix):
			fromPath = unquotePath(strings.TrimPrefix(line, renameFromPrefix))
		case strings.HasPrefix(line, renameToPrefix):
			h.Renamed = true
			toPath = unquotePath(strings.TrimPrefix(line, renameToPrefix))
		case strings.HasPrefix(line, copyToPrefix):
			toPath = unquotePath(strings.TrimPrefix(line, copyToPrefix))
		case strings.HasPrefix(line, oldFilePrefix):
			minusPath = filePath(strings.TrimPrefix(line, oldFilePrefix), "a/")
		case strings.HasPrefix(line, newFileLine):
			plusPath = filePath(strings.TrimPrefix(line, newFileLine), "b/")
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: no %q line in %d header line(s)", ErrMalformedDiff, strings.TrimSpace(gitHeaderPrefix), len(lines))
	}

	if p := firstNonEmpty(toPath, plusPath); p != "" {
		h.Path = p
	}
	if p := firstNonEmpty(fromPath, minusPath); p != "" {
		h.OldPath = p
	}
	switch {
	case h.Path == "" && h.OldPath == "":
		return nil, fmt.Errorf("%w: cannot resolve the paths of %q", ErrMalformedDiff, lines[0])
	case h.Path == "":
		h.Path = h.OldPath
	case h.OldPath == "":
		h.OldPath = h.Path
	}
	return h, nil
}

// splitGitPaths splits the `a/<old> b/<new>` part of a `diff --git` line.
// Either side may be C-quoted. When neither is quoted and a path contains
// " b/", the split with equal halves wins, as it does for every change
// that is not a rename or copy.
func splitGitPaths(rest string) (string, string, bool) {
	if strings.HasPrefix(rest, `"`) {
		end := closingQuote(rest)
		if end < 0 || end+1 >= len(rest) || rest[end+1] != ' ' {
			return "", "", false
		}
		return trimPrefixes(unquotePath(rest[:end+1]), unquotePath(rest[end+2:]))
	}

	if strings.HasSuffix(rest, `"`) {
		for i := strings.Index(rest, ` "`); i >= 0; {
			if b, err := strconv.Unquote(rest[i+1:]); err == nil {
				return trimPrefixes(rest[:i], b)
			}
			next := strings.Index(rest[i+1:], ` "`)
			if next < 0 {
				break
			}
			i += next + 1
		}
	}

	var a, b string
	for i := strings.Index(rest, " b/"); i >= 0; {
		ca, cb := rest[:i], rest[i+1:]
		if a == "" {
			a, b = ca, cb
		}
		if strings.TrimPrefix(ca, "a/") == strings.TrimPrefix(cb, "b/") {
			a, b = ca, cb
			break
		}
		next := strings.Index(rest[i+1:], " b/")
		if next < 0 {
			break
		}
		i += next + 1
	}
	return trimPrefixes(a, b)
}

func trimPrefixes(a, b string) (string, string, bool) {
	if !strings.HasPrefix(a, "a/") || !strings.HasPrefix(b, "b/") {
		return "", "", false
	}
	return a[2:], b[2:], true
}

// closingQuote returns the index of the quote closing the C-quoted string
// that starts s, or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// unquotePath decodes a path git wrapped in double quotes with C escapes.
// Unquoted paths are returned unchanged.
func unquotePath(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		if s, err := strconv.Unquote(p); err == nil {
			return s
		}
	}
	return p
}

// filePath extracts the path from the name part of a `---` or `+++` line.
// git appends a tab to names containing spaces.
func filePath(name, prefix string) string {
	name = unquotePath(strings.TrimSuffix(name, "\t"))
	if name == devNull {
		return ""
	}
	return strings.TrimPrefix(name, prefix)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
