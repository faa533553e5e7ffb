// File: internal/launcher/runner.go
package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"time"

	"github.com/enrichkit/enrich-cli/internal/enrichment"
)

// execCommandContext is swapped out in tests.
var execCommandContext = exec.CommandContext

// Result is the outcome of one external process that was started.
// A non-zero ExitCode is reported here, not as an error.
type Result struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Success reports whether the process exited with code zero.
func (r *Result) Success() bool { return r.ExitCode == 0 }

// Runner executes a command synchronously and captures its output.
type Runner interface {
	Run(ctx context.Context, argv []string) (*Result, error)
}

// ExecRunner runs commands as child processes of this one.
type ExecRunner struct {
	// Dir is the working directory of the child. Empty means the current one.
	Dir string
}

// NewExecRunner creates a runner that starts children in the current working directory.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts argv[0] with the remaining arguments and blocks until it exits.
// The returned error is non-nil only when the process could not be started or
// ctx was cancelled; a process that ran and failed yields a Result with its exit code.
func (r *ExecRunner) Run(ctx context.Context, argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: empty command", enrichment.ErrExternalToolFailure)
	}

	//nolint:gosec // G204: the command is assembled from validated parameters and configured paths.
	cmd := execCommandContext(ctx, argv[0], argv[1:]...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Args:     argv,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err == nil {
		return result, nil
	}

	result.ExitCode = -1
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("analysis interrupted: %w", ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, classifyStartError(argv[0], err)
}

// classifyStartError separates "the interpreter is not there or not runnable"
// from other start failures.
func classifyStartError(name string, err error) error {
	if errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, exec.ErrDot) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s: %w", enrichment.ErrInterpreterNotFound, name, err)
	}
	return fmt.Errorf("%w: failed to start %s: %w", enrichment.ErrExternalToolFailure, name, err)
}
