package remote

import (
	"context"
	"fmt"
)

// Result is the outcome of one remote command that ran to completion.
type Result struct {
	ExitCode int
	Output   string
}

// Executor runs a single shell command on the remote host, blocking
// until it terminates. A non-zero remote exit is a Result, not an
// error; an error means the session failed before an exit status was
// obtained.
type Executor interface {
	Exec(ctx context.Context, command, workdir string) (Result, error)
}

// SessionError indicates the ssh session failed before the remote
// command produced an exit status. Distinct from a non-zero exit: no
// result exists.
type SessionError struct {
	Host string
	Err  error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session to %s failed: %v", e.Host, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// SSH executes commands over the user's ssh binary against a single
// host. Connection setup, multiplexing and authentication belong to
// the user's ssh configuration, not to this type.
//
// ssh reports its own connection errors as exit code 255, which is
// indistinguishable from a remote command exiting 255; those surface
// as remote exits. Only subprocess-level failures (binary missing,
// signal kill) classify as session failures.
type SSH struct {
	host   string
	runner Runner
}

// NewSSH creates an executor for the given host.
func NewSSH(host string) *SSH {
	return &SSH{host: host, runner: OSRunner{}}
}

// NewSSHWithRunner creates an executor with a caller-supplied runner.
// Intended for tests.
func NewSSHWithRunner(host string, runner Runner) *SSH {
	return &SSH{host: host, runner: runner}
}

// Exec runs command in workdir on the remote host.
func (s *SSH) Exec(ctx context.Context, command, workdir string) (Result, error) {
	remoteCmd := command
	if workdir != "" {
		remoteCmd = fmt.Sprintf("cd %s && %s", workdir, command)
	}

	output, code, err := s.runner.Run(ctx, "ssh", s.host, remoteCmd)
	if err != nil {
		return Result{}, &SessionError{Host: s.host, Err: err}
	}
	return Result{ExitCode: code, Output: output}, nil
}

var _ Executor = (*SSH)(nil)
