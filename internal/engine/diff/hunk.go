package diff

import (
	"strings"
)

const (
	removedFilePrefix = "Removed file: "
	binaryFilePrefix  = "Binary file changed: "
)

// Hunk is one change region of a file's diff, or the whole payload of a
// binary patch.
type Hunk struct {
	// Lines holds the hunk verbatim, including its @@ line when textual.
	Lines  []string
	Binary bool
	// Keep marks the hunk for inclusion in the filtered patch.
	Keep bool

	diff *Diff
}

// Diff returns the file diff that owns this hunk.
func (h *Hunk) Diff() *Diff {
	return h.diff
}

// Select marks the hunk and its owning diff as kept.
func (h *Hunk) Select() {
	h.Keep = true
	if h.diff != nil {
		h.diff.Keep = true
	}
}

// Title returns the path line shown above a hunk preview.
func (h *Hunk) Title() string {
	title := ""
	if h.diff != nil && h.diff.Header != nil {
		title = h.diff.Header.Path
		if h.diff.Header.Deleted {
			title = removedFilePrefix + title
		}
	}
	if h.Binary {
		title = binaryFilePrefix + title
	}
	return title
}

// Format renders the hunk for review. Binary payloads are not shown.
func (h *Hunk) Format() string {
	if h.Binary || len(h.Lines) == 0 {
		return h.Title()
	}
	return h.Title() + "\n" + strings.Join(h.Lines, "\n")
}
