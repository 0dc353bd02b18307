package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Result is the captured outcome of a finished process.
type Result struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status 0.
func (r *Result) Success() bool { return r.ExitCode == 0 }

// String renders the command line for log messages.
func (r *Result) String() string { return strings.Join(r.Args, " ") }

// Runner starts a process and waits for it to finish.
//
// A non-nil error means the process could not be started (or was killed
// before producing an exit status). A process that ran and exited non-zero
// is not an error; callers inspect Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Result, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	// Env is appended to the inherited environment when non-empty.
	Env []string
}

// NewExecRunner returns a Runner that inherits the current environment.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args in dir and captures stdout and stderr separately.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := &Result{Args: append([]string{name}, args...)}
	err := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return finish(ctx, res, err)
}

// Stream executes name with args in dir, writing stdout and stderr
// interleaved into w. Result.Stdout and Result.Stderr stay empty.
func (r *ExecRunner) Stream(ctx context.Context, dir string, w io.Writer, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}
	// The same writer for both streams makes os/exec share one descriptor.
	cmd.Stdout = w
	cmd.Stderr = w

	res := &Result{Args: append([]string{name}, args...)}
	return finish(ctx, res, cmd.Run())
}

func finish(ctx context.Context, res *Result, err error) (*Result, error) {
	if err == nil {
		return res, nil
	}
	name := res.Args[0]
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("%s: %w", res, ctxErr)
	}
	return res, fmt.Errorf("starting %s: %w", name, err)
}

// LookPath resolves tool on PATH (or verifies an explicit path).
func LookPath(tool string) (string, error) {
	p, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("locating %s: %w", tool, err)
	}
	return p, nil
}
