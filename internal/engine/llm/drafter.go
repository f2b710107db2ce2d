// Package llm drafts commit messages for a staged patch with a language model.
package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Drafter abstracts commit message drafting for testability.
type Drafter interface {
	// Draft returns a commit message describing patch.
	Draft(ctx context.Context, patch string) (string, error)
}

// maxPatchBytes bounds how much of the patch is sent to the model.
const maxPatchBytes = 60_000

const promptTemplate = `You write git commit messages. Describe the following staged changes.
Respond ONLY with a JSON object matching the required schema.
The subject is imperative mood, at most 72 characters, no trailing period.
The body is optional and explains what changed in wrapped prose.

Files: %s

%s`

// BuildPrompt constructs a drafting prompt from a patch and the files it touches.
func BuildPrompt(patch string, files []string) string {
	if len(patch) > maxPatchBytes {
		patch = truncateLines(patch, maxPatchBytes) + "[patch truncated]\n"
	}
	return fmt.Sprintf(promptTemplate, strings.Join(files, ", "), patch)
}

// truncateLines cuts s after the last newline that fits in limit bytes, so
// no line or multi-byte character is split. A first line longer than limit
// is cut at the last rune boundary instead.
func truncateLines(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if i := strings.LastIndexByte(s[:limit], '\n'); i >= 0 {
		return s[:i+1]
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n"
}

// Message is a drafted commit message.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body,omitempty"`
}

// String renders the message as git expects it: subject, blank line, body.
func (m Message) String() string {
	subject := strings.TrimSpace(m.Subject)
	body := strings.TrimSpace(m.Body)
	if body == "" {
		return subject
	}
	return subject + "\n\n" + body
}
