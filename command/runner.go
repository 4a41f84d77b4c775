// Package command provides validated, timeout-bounded execution of the git
// binary. All repository queries in this program go through a Runner.
package command

import (
	"context"
	"strings"
	"time"

	"github.com/traceyt-cree8/gitterm-sub000/errors"
)

const (
	// DefaultTimeout bounds a single git invocation. Status and single-file
	// diff queries finish in milliseconds on healthy repositories; anything
	// approaching this limit is effectively hung.
	DefaultTimeout = 30 * time.Second

	// MaxTimeout is the maximum allowed timeout.
	MaxTimeout = 2 * time.Minute
)

// Runner executes git commands in a repository directory.
type Runner struct {
	timeout  time.Duration
	executor Executor
}

// NewRunner creates a Runner with the default timeout and real executor.
func NewRunner() *Runner {
	return NewRunnerWithExecutor(&RealExecutor{})
}

// NewRunnerWithExecutor creates a Runner with a custom Executor.
func NewRunnerWithExecutor(exec Executor) *Runner {
	return &Runner{timeout: DefaultTimeout, executor: exec}
}

// WithTimeout returns a copy of the Runner using the given timeout, capped at
// MaxTimeout.
func (r *Runner) WithTimeout(timeout time.Duration) *Runner {
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}
	return &Runner{timeout: timeout, executor: r.executor}
}

// ValidatePathspec checks that a pathspec is safe to pass on a command line.
// Pathspecs always follow a "--" separator, so only traversal needs rejecting.
func ValidatePathspec(path string) error {
	if path == "" {
		return errors.InvalidInput("pathspec", "cannot be empty")
	}
	if strings.Contains(path, "..") {
		return errors.InvalidInput("pathspec", "cannot contain '..'")
	}
	return nil
}

// Git runs `git args...` in dir and returns its stdout. A non-zero exit is
// returned as a COMMAND_FAILED error carrying the combined output.
func (r *Runner) Git(ctx context.Context, dir string, args ...string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := r.executor.CommandContext(runCtx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return "", errors.Wrap(err, errors.ErrCodeCommandTimeout, "git "+strings.Join(args, " "))
		}
		return "", errors.CommandFailed("git "+strings.Join(args, " "), err)
	}
	return string(output), nil
}
