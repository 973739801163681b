// Package remote runs single shell commands on the remote host through
// the user's ssh binary and reports exit code and captured stdout.
package remote

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner executes local subprocesses. The concrete runner shells out;
// tests substitute a stub.
type Runner interface {
	// Run executes name with args and returns captured stdout, the
	// process exit code, and an error only when no exit status was
	// obtained (start failure, signal kill).
	Run(ctx context.Context, name string, args ...string) (string, int, error)
}

// OSRunner executes real subprocesses via exec.CommandContext.
type OSRunner struct{}

func (OSRunner) Run(ctx context.Context, name string, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// Stderr passes straight through so remote build and run
	// diagnostics reach the terminal as they happen.
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return stdout.String(), exitErr.ExitCode(), nil
	}
	return "", 0, err
}
