package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *ViewError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *ViewError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// RepoUnavailable creates a repository open/discover failure error
func RepoUnavailable(path string, err error) *ViewError {
	return Wrap(err, ErrCodeRepoUnavailable, fmt.Sprintf("no git repository at or above %s", path)).
		WithDetail("path", path)
}

// PatchFailed creates a patch computation failure error
func PatchFailed(file string, err error) *ViewError {
	return Wrap(err, ErrCodePatchFailed, fmt.Sprintf("failed to compute patch for %s", file)).
		WithDetail("file", file)
}

// FileRead creates a file read failure error
func FileRead(path string, err error) *ViewError {
	return Wrap(err, ErrCodeFileRead, fmt.Sprintf("failed to read %s", path)).
		WithDetail("path", path)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *ViewError {
	viewErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		viewErr = viewErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return viewErr
}

// InvalidInput creates an invalid input error
func InvalidInput(field, reason string) *ViewError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetail("field", field)
}
