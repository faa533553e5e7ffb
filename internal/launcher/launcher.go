// File: internal/launcher/launcher.go
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/enrichkit/enrich-cli/internal/config"
	"github.com/enrichkit/enrich-cli/internal/enrichment"
)

// Launcher prepares and runs the external enrichment analysis for a request.
type Launcher struct {
	interpreter config.InterpreterConfig
	baseDir     string
	runner      Runner
	logger      *zap.Logger
	lookPath    func(string) (string, error)
	newRunID    func() string
}

// Execution describes one completed launch.
type Execution struct {
	RunID     string
	OutputDir string
	Result    *Result
}

// New creates a Launcher from the interpreter and output settings of cfg.
func New(cfg *config.Config, runner Runner, logger *zap.Logger) *Launcher {
	return &Launcher{
		interpreter: cfg.Interpreter,
		baseDir:     cfg.Output.BaseDir,
		runner:      runner,
		logger:      logger,
		lookPath:    exec.LookPath,
		newRunID:    uuid.NewString,
	}
}

// Launch checks the input file, prepares its output directory and runs the
// analysis. Output directory creation happens before the external tool is
// started and is not undone if the tool fails.
func (l *Launcher) Launch(ctx context.Context, req *enrichment.InvocationRequest) (*Execution, error) {
	runID := l.newRunID()
	logger := l.logger.With(zap.String("run_id", runID))

	if err := checkInput(req.Input); err != nil {
		return nil, err
	}

	dir, err := PrepareOutputDirectory(l.baseDir, req.Input)
	if err != nil {
		return nil, err
	}
	logger.Info("Output directory ready", zap.String("output_dir", dir))

	result, err := l.invoke(ctx, req, logger)
	return &Execution{RunID: runID, OutputDir: dir, Result: result}, err
}

// Invoke runs the analysis for req and returns its captured output. A non-zero
// exit is returned as a *enrichment.ToolFailureError carrying the captured stderr.
func (l *Launcher) Invoke(ctx context.Context, req *enrichment.InvocationRequest) (*Result, error) {
	return l.invoke(ctx, req, l.logger)
}

func (l *Launcher) invoke(ctx context.Context, req *enrichment.InvocationRequest, logger *zap.Logger) (*Result, error) {
	if err := l.Preflight(); err != nil {
		return nil, err
	}

	argv := BuildArgs(l.interpreter.Path, l.interpreter.Script, req)
	logger.Info("Launching enrichment analysis",
		zap.Strings("argv", argv),
		zap.String("organism", req.Organism.Label()),
		zap.String("gene_id_type", req.FromType.Label()),
	)

	// The caller reports failures to the user; they are not errors of this process.
	result, err := l.runner.Run(ctx, argv)
	if err != nil {
		logger.Info("Analysis could not be run", zap.Error(err))
		return result, err
	}

	if !result.Success() {
		logger.Info("Analysis failed",
			zap.Int("exit_code", result.ExitCode),
			zap.Duration("duration", result.Duration),
		)
		return result, &enrichment.ToolFailureError{ExitCode: result.ExitCode, Stderr: result.Stderr}
	}

	if result.Stderr != "" {
		logger.Debug("Analysis wrote to stderr", zap.String("stderr", result.Stderr))
	}
	logger.Info("Analysis completed", zap.Duration("duration", result.Duration))
	return result, nil
}

// Preflight verifies that the interpreter can be executed and the analysis
// script exists, so a missing installation is reported as such rather than as
// a failure of the analysis itself.
func (l *Launcher) Preflight() error {
	if _, err := l.lookPath(l.interpreter.Path); err != nil {
		return fmt.Errorf("%w: %q is not an executable on PATH or disk (set interpreter.path or %s_INTERPRETER_PATH): %w",
			enrichment.ErrInterpreterNotFound, l.interpreter.Path, config.EnvPrefix, err)
	}

	info, err := os.Stat(l.interpreter.Script)
	if err != nil {
		return fmt.Errorf("%w: analysis script %q: %w", enrichment.ErrInterpreterNotFound, l.interpreter.Script, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: analysis script %q is a directory", enrichment.ErrInterpreterNotFound, l.interpreter.Script)
	}
	return nil
}

// checkInput requires the input to be an existing regular file that can be opened.
func checkInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return enrichment.InvalidArgumentf("input file %q: %v", path, err)
	}
	if info.IsDir() {
		return enrichment.InvalidArgumentf("input %q is a directory, expected a file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return enrichment.InvalidArgumentf("input file %q is not readable: %v", path, err)
	}
	return f.Close()
}
