// Package system runs external commands and reports their outcome.
package system

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result holds the captured output and exit status of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Invoker runs an external command and waits for it to finish.
// A non-zero exit status is reported through Result.ExitCode, not the
// error return; the error is reserved for failures to run the command
// at all (missing binary, cancelled context).
type Invoker interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecInvoker is the production Invoker backed by os/exec.
type ExecInvoker struct{}

func NewExecInvoker() *ExecInvoker {
	return &ExecInvoker{}
}

func (e *ExecInvoker) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}
