package git

import (
	"context"
)

// MockService is a test double for git.Service.
type MockService struct {
	Untracked    []string
	UntrackedErr error
	StageErr     error
	DiffLines    []string
	DiffErr      error
	StagedOut    string
	StagedErr    error
	ApplyOut     string
	ApplyErr     error
	StatusOut    string
	StatusErr    error
	CommitOut    string
	CommitErr    error

	Staged    []string
	Applied   []string
	Committed []string
}

// UntrackedFiles returns the configured file list.
func (m *MockService) UntrackedFiles(_ context.Context) ([]string, error) {
	return m.Untracked, m.UntrackedErr
}

// StageFile records the path and returns the configured error.
func (m *MockService) StageFile(_ context.Context, path string) error {
	if m.StageErr != nil {
		return m.StageErr
	}
	m.Staged = append(m.Staged, path)
	return nil
}

// WorkingDiff returns the configured diff lines.
func (m *MockService) WorkingDiff(_ context.Context) ([]string, error) {
	return m.DiffLines, m.DiffErr
}

// StagedDiff returns the configured staged diff.
func (m *MockService) StagedDiff(_ context.Context) (string, error) {
	return m.StagedOut, m.StagedErr
}

// ApplyCached records the patch and returns the configured result.
func (m *MockService) ApplyCached(_ context.Context, patch string) (string, error) {
	m.Applied = append(m.Applied, patch)
	return m.ApplyOut, m.ApplyErr
}

// Status returns the configured status output.
func (m *MockService) Status(_ context.Context) (string, error) {
	return m.StatusOut, m.StatusErr
}

// Commit records the message and returns the configured result.
func (m *MockService) Commit(_ context.Context, message string) (string, error) {
	m.Committed = append(m.Committed, message)
	return m.CommitOut, m.CommitErr
}
