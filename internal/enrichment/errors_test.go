package enrichment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolFailureError(t *testing.T) {
	err := &ToolFailureError{ExitCode: 1, Stderr: "bad input\n"}

	assert.True(t, errors.Is(err, ErrExternalToolFailure))
	assert.Equal(t, "external tool exited with code 1: bad input", err.Error())

	empty := &ToolFailureError{ExitCode: 3}
	assert.Equal(t, "external tool exited with code 3", empty.Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid argument", InvalidArgumentf("bad flag"), ExitUsage},
		{"wrapped invalid argument", fmt.Errorf("parse: %w", InvalidArgumentf("x")), ExitUsage},
		{"interpreter missing", fmt.Errorf("%w: Rscript", ErrInterpreterNotFound), ExitInterpreterAbsent},
		{"tool failure propagates code", &ToolFailureError{ExitCode: 42}, 42},
		{"wrapped tool failure", fmt.Errorf("run: %w", &ToolFailureError{ExitCode: 3}), 3},
		{"tool failure without code", &ToolFailureError{ExitCode: -1}, ExitFailure},
		{"start failure", fmt.Errorf("%w: permission denied", ErrExternalToolFailure), ExitFailure},
		{"interrupted", fmt.Errorf("run: %w", context.Canceled), ExitInterrupted},
		{"anything else", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
