package llm

import (
	"context"
)

// MockDrafter is a test double for llm.Drafter.
type MockDrafter struct {
	Message string
	Err     error
	Patches []string
}

// Draft records the patch and returns the configured message and error.
func (m *MockDrafter) Draft(_ context.Context, patch string) (string, error) {
	m.Patches = append(m.Patches, patch)
	return m.Message, m.Err
}
