package diff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// ErrInvalidPatch is returned when a rebuilt patch does not parse as a git patch.
var ErrInvalidPatch = errors.New("invalid patch")

// Validate checks that a rebuilt patch parses as a git patch and names
// every file exactly once. An empty patch is valid.
func Validate(patch string) error {
	if patch == "" {
		return nil
	}

	files, _, err := gitdiff.Parse(strings.NewReader(patch))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	want := len(Split(SplitText(patch)))
	if len(files) != want {
		return fmt.Errorf("%w: parsed %d file(s), expected %d", ErrInvalidPatch, len(files), want)
	}
	return nil
}
