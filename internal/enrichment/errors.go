// File: internal/enrichment/errors.go
package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy for a launch. All of them are terminal for the current
// invocation; nothing is retried.
var (
	// ErrInvalidArgument means a CLI value is outside its enumerated or typed domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInterpreterNotFound means the external interpreter or script is missing or not executable.
	ErrInterpreterNotFound = errors.New("interpreter not found")
	// ErrExternalToolFailure means the external process could not run to a zero exit.
	ErrExternalToolFailure = errors.New("external tool failure")
)

// Process exit codes used by the command-line entry point.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitUsage             = 2
	ExitInterpreterAbsent = 127
	ExitInterrupted       = 130
)

// ToolFailureError carries the result of an external process that exited non-zero.
type ToolFailureError struct {
	ExitCode int
	Stderr   string
}

func (e *ToolFailureError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("external tool exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("external tool exited with code %d: %s", e.ExitCode, msg)
}

// Unwrap lets errors.Is(err, ErrExternalToolFailure) match.
func (e *ToolFailureError) Unwrap() error { return ErrExternalToolFailure }

// InvalidArgumentf builds an error wrapping ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// ExitCode maps an error from a launch to the exit status of this process.
// The exit code of a failed external tool is propagated so callers can script against it.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var toolErr *ToolFailureError
	switch {
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &toolErr):
		if toolErr.ExitCode > 0 {
			return toolErr.ExitCode
		}
		return ExitFailure
	case errors.Is(err, ErrInvalidArgument):
		return ExitUsage
	case errors.Is(err, ErrInterpreterNotFound):
		return ExitInterpreterAbsent
	default:
		return ExitFailure
	}
}
