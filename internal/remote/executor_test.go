package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	gotName string
	gotArgs []string
	out     string
	code    int
	err     error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, int, error) {
	f.gotName = name
	f.gotArgs = args
	return f.out, f.code, f.err
}

func TestSSH_Exec_CommandAssembly(t *testing.T) {
	runner := &fakeRunner{out: "hello\n"}
	ssh := NewSSHWithRunner("login1", runner)

	res, err := ssh.Exec(context.Background(), "docker ps", "~/project")
	require.NoError(t, err)

	assert.Equal(t, "ssh", runner.gotName)
	assert.Equal(t, []string{"login1", "cd ~/project && docker ps"}, runner.gotArgs)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", res.Output)
}

func TestSSH_Exec_NoWorkdir(t *testing.T) {
	runner := &fakeRunner{}
	ssh := NewSSHWithRunner("login1", runner)

	_, err := ssh.Exec(context.Background(), "docker ps", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"login1", "docker ps"}, runner.gotArgs)
}

func TestSSH_Exec_NonZeroExitIsResultNotError(t *testing.T) {
	runner := &fakeRunner{out: "partial", code: 17}
	ssh := NewSSHWithRunner("login1", runner)

	res, err := ssh.Exec(context.Background(), "docker build .", "~/project")
	require.NoError(t, err)
	assert.Equal(t, 17, res.ExitCode)
	assert.Equal(t, "partial", res.Output)
}

func TestSSH_Exec_SessionFailure(t *testing.T) {
	cause := errors.New("connection refused")
	runner := &fakeRunner{err: cause}
	ssh := NewSSHWithRunner("login1", runner)

	_, err := ssh.Exec(context.Background(), "docker ps", "~/project")

	var sessionErr *SessionError
	require.ErrorAs(t, err, &sessionErr)
	assert.Equal(t, "login1", sessionErr.Host)
	assert.ErrorIs(t, err, cause)
}
