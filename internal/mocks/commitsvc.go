package mocks

import (
	"github.com/mcdonaldj/gitorade/internal/config"
	"github.com/mcdonaldj/gitorade/internal/ports"
)

// CommitCall records one Commit invocation on the mock service.
type CommitCall struct {
	Message string
	Type    string
	Dir     string
}

// MockCommitService implements ports.CommitService for testing the TUI.
type MockCommitService struct {
	ConfigResult *config.Config
	ConfigErr    error

	GitPath       string
	GitVersionStr string
	GitErr        error

	Outcome   ports.CommitOutcome
	CommitErr error

	// CommitCalls records every Commit invocation, in order.
	CommitCalls []CommitCall
}

// NewMockCommitService creates a mock with a default empty config.
func NewMockCommitService() *MockCommitService {
	return &MockCommitService{
		ConfigResult:  config.DefaultConfig(),
		GitPath:       "/usr/bin/git",
		GitVersionStr: "2.30.0",
	}
}

// LoadConfig returns the configured config or error.
func (m *MockCommitService) LoadConfig() (*config.Config, error) {
	if m.ConfigErr != nil {
		return nil, m.ConfigErr
	}
	return m.ConfigResult, nil
}

// GitVersion returns the configured path/version or error.
func (m *MockCommitService) GitVersion() (string, string, error) {
	if m.GitErr != nil {
		return "", "", m.GitErr
	}
	return m.GitPath, m.GitVersionStr, nil
}

// Commit records the call and returns the configured outcome.
func (m *MockCommitService) Commit(message, commitType, dir string) (ports.CommitOutcome, error) {
	m.CommitCalls = append(m.CommitCalls, CommitCall{Message: message, Type: commitType, Dir: dir})
	if m.CommitErr != nil {
		return ports.CommitOutcome{}, m.CommitErr
	}
	return m.Outcome, nil
}

// Compile-time check that MockCommitService implements ports.CommitService.
var _ ports.CommitService = (*MockCommitService)(nil)
