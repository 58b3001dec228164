package ports

// PathResolver abstracts executable lookup on the process search path.
// Production code uses the execgit adapter; tests use mocks.MockResolver.
type PathResolver interface {
	// LookPath returns the resolved path of the named executable, or an
	// error if no such executable is on the search path.
	LookPath(name string) (string, error)
}

// CommandRunner abstracts subprocess execution for testability.
// Production code uses the execgit adapter; tests use mocks.MockRunner.
type CommandRunner interface {
	// CombinedOutput runs name with args in dir (empty means the current
	// working directory), waits for the process to exit, and returns its
	// merged stdout+stderr along with the exit code. The error is non-nil
	// only when the process could not be started; a nonzero exit code is
	// a normal result. The child is always waited on and its output fully
	// drained before return.
	CombinedOutput(dir, name string, args ...string) (out []byte, exitCode int, err error)
}
