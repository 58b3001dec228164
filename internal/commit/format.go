// Package commit formats conventional-commit messages and runs git commit.
package commit

import "strings"

// Types enumerates the recognized conventional-commit type tags.
var Types = []string{
	"feat",
	"fix",
	"docs",
	"style",
	"refactor",
	"perf",
	"test",
	"chore",
	"revert",
	"build",
	"ci",
	"release",
	"other",
}

// IsType reports whether tag is one of the recognized commit types.
func IsType(tag string) bool {
	for _, t := range Types {
		if t == tag {
			return true
		}
	}
	return false
}

// Format produces the final commit message. A recognized commitType is
// prefixed as "[type]: message" with the message passed through
// byte-for-byte; an unrecognized type leaves the message untouched. An
// empty message yields an empty result regardless of type — the caller
// must treat that as "no message" and fail the commit.
//
// The message is never word-split and rejoined: that would collapse runs
// of whitespace inside it.
func Format(message, commitType string) string {
	if message == "" {
		return ""
	}
	if IsType(commitType) {
		return "[" + commitType + "]: " + message
	}
	return message
}

// FormatShorthand handles self-referential messages that begin with the
// program's own invocation name, e.g. "gitorade fix typo". The message is
// tokenized on whitespace; exactly three tokens with a recognized second
// token yield "[token2]: token3", anything else yields the tokens after
// the first rejoined with single spaces. This is a distinct entry point,
// not a hidden branch of Format.
func FormatShorthand(message string) string {
	tokens := strings.Fields(message)
	if len(tokens) == 3 && IsType(tokens[1]) {
		return "[" + tokens[1] + "]: " + tokens[2]
	}
	if len(tokens) < 2 {
		return ""
	}
	return strings.Join(tokens[1:], " ")
}

// IsShorthand reports whether message starts with the given invocation
// name as its first whitespace token.
func IsShorthand(message, invocation string) bool {
	tokens := strings.Fields(message)
	return len(tokens) > 0 && tokens[0] == invocation
}
