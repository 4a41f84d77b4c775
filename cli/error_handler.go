package cli

import (
	"fmt"
	"os"

	"github.com/traceyt-cree8/gitterm-sub000/errors"
)

// ErrorHandler prints user-facing messages for coded errors.
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{Verbose: verbose}
}

// Handle writes a friendly message for the error to stderr and returns it.
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeRepoUnavailable:
		fmt.Fprintf(os.Stderr, "No git repository found. Run gitview inside a repository or pass its path.\n")

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Check your %s file.\n", ".gitview.yml")

	case errors.ErrCodeCommandNotFound:
		fmt.Fprintf(os.Stderr, "The git executable was not found on PATH.\n")

	case errors.ErrCodeCommandTimeout:
		fmt.Fprintf(os.Stderr, "A git command timed out: %v\n", err)

	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	if h.Verbose {
		if viewErr, ok := err.(*errors.ViewError); ok {
			fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", viewErr.ToJSON())
		}
	}
	return err
}
