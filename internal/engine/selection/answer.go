// Package selection implements the yes / no / all / done question loop used
// to pick untracked files and hunks.
package selection

import (
	"strings"
)

// Answer is the user's response to a single selection question.
type Answer int

const (
	// AnswerNo leaves the item unselected. It is also the empty-input default.
	AnswerNo Answer = iota
	// AnswerYes selects the item.
	AnswerYes
	// AnswerAll selects the item and every item after it without asking.
	AnswerAll
	// AnswerDone stops asking; remaining items stay unselected.
	AnswerDone
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerAll:
		return "all"
	case AnswerDone:
		return "done"
	default:
		return "no"
	}
}

// ParseAnswer maps user input to an Answer. The second result is false for
// input that is not a recognised answer.
func ParseAnswer(input string) (Answer, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "n", "no":
		return AnswerNo, true
	case "y", "yes":
		return AnswerYes, true
	case "a", "all":
		return AnswerAll, true
	case "d", "done", "q", "quit":
		return AnswerDone, true
	}
	return AnswerNo, false
}
