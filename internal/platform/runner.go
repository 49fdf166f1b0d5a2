package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"github.com/alessio/shellescape"
	"go.uber.org/zap"
)

// DefaultGracePeriod is how long a terminated child gets between SIGTERM and SIGKILL.
const DefaultGracePeriod = 3 * time.Second

// UnknownExitCode is reported when the child did not exit on its own.
const UnknownExitCode = -1

// Result is the outcome of a blocking Run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Process is a handle to a streaming child process.
type Process interface {
	// Wait blocks until the child exits and all of its output was delivered.
	Wait() (int, error)
	// Terminate asks the child to stop. Safe to call more than once and after exit.
	Terminate()
}

// SpawnError reports that the executable could not be started at all.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Runner launches external tools.
type Runner struct {
	logger      *zap.Logger
	gracePeriod time.Duration
}

// NewRunner creates a runner that logs command lines to logger.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		logger:      logger,
		gracePeriod: DefaultGracePeriod,
	}
}

// SetGracePeriod sets the delay between SIGTERM and SIGKILL
func (r *Runner) SetGracePeriod(d time.Duration) {
	r.gracePeriod = d
}

// Run executes path with args and waits for it. A non-zero exit is reported
// through Result.ExitCode, not as an error. When ctx ends first the child is
// terminated and ctx.Err() is returned.
func (r *Runner) Run(ctx context.Context, path string, args ...string) (Result, error) {
	cmd := r.command(ctx, path, args)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Result{ExitCode: UnknownExitCode}, &SpawnError{Path: path, Err: err}
	}

	err := cmd.Wait()
	res := Result{
		ExitCode: UnknownExitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, ctxErr
	}

	code, err := exitStatus(err)
	res.ExitCode = code
	if err != nil {
		return res, fmt.Errorf("wait for %s: %w", path, err)
	}

	r.logger.Debug("command finished", zap.String("path", path), zap.Int("exit_code", code))
	return res, nil
}

// Stream starts path with args and returns immediately. Stdout and stderr
// share one pipe; every read is handed to onChunk in pipe order from a single
// goroutine.
func (r *Runner) Stream(ctx context.Context, path string, args []string, onChunk func(string)) (Process, error) {
	procCtx, cancel := context.WithCancel(ctx)
	cmd := r.command(procCtx, path, args)

	w := &chunkWriter{onChunk: onChunk}
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, &SpawnError{Path: path, Err: err}
	}

	return &streamProcess{cmd: cmd, cancel: cancel, path: path, logger: r.logger}, nil
}

func (r *Runner) command(ctx context.Context, path string, args []string) *exec.Cmd {
	r.logger.Debug("launching command",
		zap.String("command", shellescape.QuoteCommand(append([]string{path}, args...))))

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Cancel = func() error {
		if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
	cmd.WaitDelay = r.gracePeriod
	return cmd
}

// exitStatus maps the error returned by Cmd.Wait to an exit code.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return UnknownExitCode, err
}

type chunkWriter struct {
	onChunk func(string)
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	if len(p) > 0 && w.onChunk != nil {
		w.onChunk(string(p))
	}
	return len(p), nil
}

type streamProcess struct {
	cmd    *exec.Cmd
	cancel context.CancelFunc
	path   string
	logger *zap.Logger
}

func (p *streamProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	p.cancel()

	code, err := exitStatus(err)
	if err != nil {
		return code, fmt.Errorf("wait for %s: %w", p.path, err)
	}
	p.logger.Debug("stream finished", zap.String("path", p.path), zap.Int("exit_code", code))
	return code, nil
}

func (p *streamProcess) Terminate() {
	p.cancel()
}
