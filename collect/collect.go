// Package collect implements the snapshot collectors: git status, file tree,
// diff, file load and syntax highlight. Each collector is a pure function of
// its inputs that always returns a valid (possibly empty) snapshot: internal
// failures degrade to empty results instead of propagating, so the interactive
// shell needs no error-display path for this pipeline.
//
// Collectors are designed to run on worker goroutines; they hold no shared
// mutable state.
package collect

import (
	"strings"

	"github.com/traceyt-cree8/gitterm-sub000/logging"
)

var log = logging.NewLogger("collect")

// splitLines splits s into lines the way a line-oriented tool counts them: a
// trailing newline does not produce a final empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
