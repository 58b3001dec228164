// Package locate discovers a supported git executable on the search path.
package locate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mcdonaldj/gitorade/internal/ports"
)

// Accepted git version range, inclusive minimum and exclusive maximum.
// Versions are compared lexicographically against these bounds.
const (
	MinVersion = "2.0.0"
	MaxVersion = "3.0.0"
)

// ErrNotFound reports that no usable git executable was discovered: the
// binary is absent from the search path, the version query failed, or its
// output was unreadable.
var ErrNotFound = errors.New("git not found")

// UnsupportedVersionError reports a discovered git whose version falls
// outside the accepted range. It is deliberately distinct from
// ErrNotFound so callers can tell "install git" from "wrong git".
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("git version %s is not supported (want >= %s and < %s)",
		e.Version, MinVersion, MaxVersion)
}

// GitBinary is a located, version-validated git executable. Immutable
// once returned by Git.
type GitBinary struct {
	Path    string
	Version string
}

// Git finds git on the search path and validates its version. The
// resolver and runner are injected so tests can substitute them without
// touching process-wide state. At most one subprocess (the version
// query) is spawned.
func Git(resolver ports.PathResolver, runner ports.CommandRunner) (GitBinary, error) {
	path, err := resolver.LookPath("git")
	if err != nil {
		return GitBinary{}, ErrNotFound
	}

	// Overrides are commit-only; the version query runs bare.
	out, exitCode, err := runner.CombinedOutput("", path, "--version")
	if err != nil || exitCode != 0 {
		return GitBinary{}, ErrNotFound
	}

	version, ok := parseVersion(string(out))
	if !ok {
		return GitBinary{}, ErrNotFound
	}

	if version < MinVersion || version >= MaxVersion {
		return GitBinary{}, &UnsupportedVersionError{Version: version}
	}

	return GitBinary{Path: path, Version: version}, nil
}

// parseVersion extracts the version token from `git --version` output,
// e.g. "git version 2.30.0" -> "2.30.0".
func parseVersion(out string) (string, bool) {
	fields := strings.Fields(out)
	if len(fields) < 3 {
		return "", false
	}
	return fields[2], true
}
