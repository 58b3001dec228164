package mocks

import (
	"fmt"

	"github.com/mcdonaldj/gitorade/internal/ports"
)

// MockResolver implements ports.PathResolver for testing.
type MockResolver struct {
	// Paths maps executable names to resolved paths.
	Paths map[string]string
	// Lookups records the names looked up, in order.
	Lookups []string
}

// NewMockResolver creates a new mock path resolver.
func NewMockResolver() *MockResolver {
	return &MockResolver{
		Paths: make(map[string]string),
	}
}

// LookPath returns the configured path for name, or an error when the
// name is not configured (simulating an empty search path).
func (m *MockResolver) LookPath(name string) (string, error) {
	m.Lookups = append(m.Lookups, name)
	if path, ok := m.Paths[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// Call records one CombinedOutput invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Response is a canned subprocess outcome.
type Response struct {
	Output   string
	ExitCode int
	Err      error
}

// MockRunner implements ports.CommandRunner for testing.
type MockRunner struct {
	// Responses maps the first argument of an invocation ("--version",
	// "commit") to its canned response. Invocations with no configured
	// response succeed with empty output.
	Responses map[string]Response
	// Calls records every invocation, in order.
	Calls []Call
}

// NewMockRunner creates a new mock command runner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Responses: make(map[string]Response),
	}
}

// CombinedOutput records the call and replays the canned response keyed
// by the invocation's first argument.
func (m *MockRunner) CombinedOutput(dir, name string, args ...string) ([]byte, int, error) {
	m.Calls = append(m.Calls, Call{Dir: dir, Name: name, Args: args})

	key := ""
	if len(args) > 0 {
		key = args[0]
	}
	resp, ok := m.Responses[key]
	if !ok {
		return nil, 0, nil
	}
	if resp.Err != nil {
		return []byte(resp.Output), -1, resp.Err
	}
	return []byte(resp.Output), resp.ExitCode, nil
}

// LastCall returns the most recent invocation, or nil when none happened.
func (m *MockRunner) LastCall() *Call {
	if len(m.Calls) == 0 {
		return nil
	}
	return &m.Calls[len(m.Calls)-1]
}

// Compile-time checks that the mocks implement their ports.
var (
	_ ports.PathResolver  = (*MockResolver)(nil)
	_ ports.CommandRunner = (*MockRunner)(nil)
)
