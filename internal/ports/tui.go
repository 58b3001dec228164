package ports

import (
	"github.com/mcdonaldj/gitorade/internal/config"
)

// CommitOutcome contains the result of a commit attempt for display.
type CommitOutcome struct {
	// Message is the final, formatted commit message that was used.
	Message string
	// ExitCode is git's own exit code (0 on success).
	ExitCode int
	// Output is the combined stdout+stderr of the git invocation.
	Output string
}

// CommitService provides the operations needed by the TUI.
// This abstraction allows the TUI to be tested without spawning git.
type CommitService interface {
	// LoadConfig loads the application configuration.
	LoadConfig() (*config.Config, error)

	// GitVersion reports the discovered git binary path and version.
	GitVersion() (path, version string, err error)

	// Commit formats message with commitType and commits the staged
	// changes in dir (empty dir means the current working directory).
	// Configured overrides are forwarded to the invocation.
	Commit(message, commitType, dir string) (CommitOutcome, error)
}
