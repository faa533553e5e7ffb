// File: internal/mocks/mocks.go
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/enrichkit/enrich-cli/internal/launcher"
)

// -- Runner Mock --

// MockRunner mocks launcher.Runner so command assembly and result handling can
// be tested without starting a process.
type MockRunner struct {
	mock.Mock
}

var _ launcher.Runner = (*MockRunner)(nil)

// Run records the call and returns the configured result and error.
func (m *MockRunner) Run(ctx context.Context, argv []string) (*launcher.Result, error) {
	args := m.Called(ctx, argv)
	var result *launcher.Result
	if r := args.Get(0); r != nil {
		result = r.(*launcher.Result)
	}
	return result, args.Error(1)
}

// NewSuccessRunner returns a MockRunner that answers any command with exit
// code 0 and the given stdout.
func NewSuccessRunner(stdout string) *MockRunner {
	m := new(MockRunner)
	m.On("Run", mock.Anything, mock.Anything).Return(&launcher.Result{Stdout: stdout}, nil)
	return m
}
