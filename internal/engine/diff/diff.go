package diff

import (
	"fmt"
	"strings"
)

const (
	binaryPatchMarker = "GIT binary patch"
	hunkMarker        = '@'
)

// Diff is the complete change to one file.
type Diff struct {
	Header *Header
	Hunks  []*Hunk
	// Keep is true once any of the hunks has been selected.
	Keep bool
}

// SplitText turns raw diff output into lines. A trailing newline does not
// produce an empty last line.
func SplitText(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Split partitions diff lines into one group per file. Each group starts
// with a `diff --git ` line; groups keep their input order.
func Split(lines []string) [][]string {
	var groups [][]string
	var current []string

	for _, line := range lines {
		if strings.HasPrefix(line, gitHeaderPrefix) && len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}

// Parse builds a Diff from the lines of a single file group.
func Parse(group []string) (*Diff, error) {
	var (
		headerLines []string
		hunkLines   []string
		hunks       [][]string
		inHeader    = true
		binary      = false
	)

	for _, line := range group {
		if inHeader && isHeaderLine(line) {
			headerLines = append(headerLines, line)
			continue
		}

		switch {
		case line == binaryPatchMarker:
			inHeader = false
			binary = true
			headerLines = append(headerLines, line)
		case len(line) > 0 && line[0] == hunkMarker:
			inHeader = false
			if len(hunkLines) > 0 {
				hunks = append(hunks, hunkLines)
			}
			hunkLines = []string{line}
		default:
			hunkLines = append(hunkLines, line)
		}
	}
	if len(hunkLines) > 0 {
		hunks = append(hunks, hunkLines)
	}

	header, err := ParseHeader(headerLines)
	if err != nil {
		return nil, err
	}

	d := &Diff{Header: header, Hunks: make([]*Hunk, 0, len(hunks))}
	for _, lines := range hunks {
		d.Hunks = append(d.Hunks, &Hunk{Lines: lines, Binary: binary, diff: d})
	}
	return d, nil
}

// ParseAll splits diff lines into files and parses each of them.
func ParseAll(lines []string) ([]*Diff, error) {
	groups := Split(lines)
	diffs := make([]*Diff, 0, len(groups))
	for i, group := range groups {
		d, err := Parse(group)
		if err != nil {
			return nil, fmt.Errorf("parsing file %d: %w", i+1, err)
		}
		diffs = append(diffs, d)
	}
	return diffs, nil
}

// isHeaderLine reports whether a line still belongs to the preamble.
func isHeaderLine(line string) bool {
	if line == binaryPatchMarker {
		return false
	}
	if strings.HasPrefix(line, "+++ ") || strings.HasPrefix(line, "--- ") {
		return true
	}
	return !isContentLine(line)
}

// isContentLine reports whether a line starts with a hunk or hunk-body marker.
func isContentLine(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case ' ', '+', '-', '\\', hunkMarker:
		return true
	}
	return false
}

// Selectable reports whether the diff has anything to offer for selection.
func (d *Diff) Selectable() bool {
	return len(d.Hunks) > 0
}

// Lines returns the header followed by every hunk, regardless of Keep.
func (d *Diff) Lines() []string {
	lines := append([]string(nil), d.Header.Lines...)
	for _, h := range d.Hunks {
		lines = append(lines, h.Lines...)
	}
	return lines
}

// Filter rebuilds the file's patch from its header and kept hunks.
func (d *Diff) Filter() string {
	var b strings.Builder
	writeLines(&b, d.Header.Lines)
	for _, h := range d.Hunks {
		if h.Keep {
			writeLines(&b, h.Lines)
		}
	}
	return b.String()
}

// FilterDiffs concatenates the filtered patch of every kept diff in order.
// It returns "" when nothing was kept.
func FilterDiffs(diffs []*Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Keep {
			b.WriteString(d.Filter())
		}
	}
	return b.String()
}

// SelectableHunks returns the hunks of all diffs in presentation order.
func SelectableHunks(diffs []*Diff) []*Hunk {
	var hunks []*Hunk
	for _, d := range diffs {
		hunks = append(hunks, d.Hunks...)
	}
	return hunks
}

func writeLines(b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
