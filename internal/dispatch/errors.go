package dispatch

import (
	"errors"
	"fmt"
)

// ErrSyncAborted indicates the user declined the sync confirmation or
// the sync itself failed. The remote side is never contacted for the
// aborted operation.
var ErrSyncAborted = errors.New("sync aborted")

// UsageError reports invalid user input: an unknown subcommand, a
// malformed logs or stop argument, or an operation that needs a launch
// when none has been recorded. These never reach the remote side.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Usagef creates a UsageError.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// RemoteExitError reports a remote command that ran to completion and
// exited non-zero. No retry is attempted; rerunning is a user decision.
type RemoteExitError struct {
	Command  string
	ExitCode int
}

func (e *RemoteExitError) Error() string {
	return fmt.Sprintf("remote command exited with status %d: %s", e.ExitCode, e.Command)
}
