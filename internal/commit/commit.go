package commit

import (
	"github.com/mcdonaldj/gitorade/internal/locate"
	"github.com/mcdonaldj/gitorade/internal/ports"
)

// Override is a single git configuration override forwarded to the
// commit invocation as "-c key=value". A slice of pairs, not a map,
// keeps the forwarding order deterministic.
type Override struct {
	Key   string
	Value string
}

// Request describes one commit invocation. Construct it once and hand it
// to Run; it is never mutated.
type Request struct {
	// Message is the raw commit message. Run formats it with Type;
	// callers that pre-format (e.g. the shorthand path) leave Type empty
	// so the message passes through verbatim.
	Message string
	// Type is an optional commit-type tag. Unrecognized tags are not
	// rejected; the message is used as-is.
	Type string
	// Files are committed literally and in order. Empty means no file
	// arguments at all, which makes git commit the staged changes — its
	// native behavior, deliberately not special-cased here.
	Files []string
	// Dir is the working directory for the invocation (empty means the
	// current working directory).
	Dir string
	// Overrides are forwarded as -c pairs in slice order.
	Overrides []Override
}

// Result is the terminal outcome of a commit invocation. A nonzero
// ExitCode is a normal result, not an error; the caller decides how to
// surface it. Commit failures are user-actionable (nothing staged, hook
// rejection) and are never retried here.
type Result struct {
	ExitCode int
	Output   string
}

// Run executes git commit for req, capturing the combined output. The
// returned error is non-nil only when the subprocess could not be
// started at all.
func Run(runner ports.CommandRunner, git locate.GitBinary, req Request) (Result, error) {
	args := buildArgs(req)
	out, exitCode, err := runner.CombinedOutput(req.Dir, git.Path, args...)
	if err != nil {
		return Result{ExitCode: -1, Output: string(out)}, err
	}
	return Result{ExitCode: exitCode, Output: string(out)}, nil
}

// buildArgs constructs the argument vector:
// commit -m <message> [-c key=value]... [files...]
func buildArgs(req Request) []string {
	args := []string{"commit", "-m", Format(req.Message, req.Type)}
	for _, o := range req.Overrides {
		args = append(args, "-c", o.Key+"="+o.Value)
	}
	args = append(args, req.Files...)
	return args
}
