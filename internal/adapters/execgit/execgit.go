// Package execgit provides the production PathResolver and CommandRunner
// adapters backed by os/exec.
package execgit

import (
	"errors"
	"os/exec"

	"github.com/mcdonaldj/gitorade/internal/ports"
)

// Resolver implements ports.PathResolver using exec.LookPath.
type Resolver struct{}

// NewResolver creates a new Resolver adapter.
func NewResolver() *Resolver {
	return &Resolver{}
}

// LookPath returns the resolved path of the named executable.
func (r *Resolver) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Runner implements ports.CommandRunner using exec.Command.
type Runner struct{}

// NewRunner creates a new Runner adapter.
func NewRunner() *Runner {
	return &Runner{}
}

// CombinedOutput runs name with args in dir and returns the merged
// stdout+stderr and the exit code. exec.Cmd.CombinedOutput waits for the
// child and drains its output on every path, so no zombie is left behind
// even when the command fails. No timeout is imposed here; callers that
// need one supervise the gitorade process itself.
func (r *Runner) CombinedOutput(dir, name string, args ...string) ([]byte, int, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran and exited nonzero: a normal result.
			return out, exitErr.ExitCode(), nil
		}
		return out, -1, err
	}
	return out, 0, nil
}

// Compile-time checks that the adapters implement their ports.
var (
	_ ports.PathResolver  = (*Resolver)(nil)
	_ ports.CommandRunner = (*Runner)(nil)
)
