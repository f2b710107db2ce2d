package selection

import (
	"context"
)

// MockAsker is a test double for Asker that replays scripted answers.
// Once the script runs out it answers AnswerNo.
type MockAsker struct {
	Answers []Answer
	Err     error
	Prompts []string
}

// Ask records the prompt and returns the next scripted answer.
func (m *MockAsker) Ask(_ context.Context, prompt string, _, _ int) (Answer, error) {
	if m.Err != nil {
		return AnswerDone, m.Err
	}
	m.Prompts = append(m.Prompts, prompt)
	if len(m.Prompts) > len(m.Answers) {
		return AnswerNo, nil
	}
	return m.Answers[len(m.Prompts)-1], nil
}
