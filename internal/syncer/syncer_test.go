package syncer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruhn/dockhand/internal/testutil"
)

func newTestSyncer(runner *testutil.StubRunner, input string) (*Syncer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Syncer{
		host:        "login1",
		workdir:     "~/project",
		exclude:     []string{".git"},
		runner:      runner,
		in:          strings.NewReader(input),
		out:         out,
		interactive: true,
	}, out
}

func TestCheckAndConfirmChanges_CleanTreeProceedsWithoutPrompt(t *testing.T) {
	runner := testutil.NewStubRunner()
	runner.Stub("git status --porcelain", "", 0, nil)
	s, out := newTestSyncer(runner, "")

	ok, err := s.CheckAndConfirmChanges(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out.String())
}

func TestCheckAndConfirmChanges_Accepted(t *testing.T) {
	runner := testutil.NewStubRunner()
	runner.Stub("git status --porcelain", " M train.py\n?? notes.txt\n", 0, nil)
	s, out := newTestSyncer(runner, "y\n")

	ok, err := s.CheckAndConfirmChanges(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "train.py")
	assert.Contains(t, out.String(), "login1")
}

func TestCheckAndConfirmChanges_Declined(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "nope\n"} {
		runner := testutil.NewStubRunner()
		runner.Stub("git status --porcelain", " M train.py\n", 0, nil)
		s, _ := newTestSyncer(runner, answer)

		ok, err := s.CheckAndConfirmChanges(context.Background())
		require.NoError(t, err)
		assert.False(t, ok, "answer %q should decline", answer)
	}
}

func TestCheckAndConfirmChanges_NonInteractiveWithChanges(t *testing.T) {
	runner := testutil.NewStubRunner()
	runner.Stub("git status --porcelain", " M train.py\n", 0, nil)
	s, _ := newTestSyncer(runner, "y\n")
	s.interactive = false

	ok, err := s.CheckAndConfirmChanges(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckAndConfirmChanges_GitFailure(t *testing.T) {
	runner := testutil.NewStubRunner()
	runner.Stub("git status --porcelain", "", 128, nil)
	s, _ := newTestSyncer(runner, "")

	_, err := s.CheckAndConfirmChanges(context.Background())
	assert.Error(t, err)
}

func TestExecuteSync_RunsRsync(t *testing.T) {
	runner := testutil.NewStubRunner()
	runner.Stub("rsync -az --delete --exclude .git ./ login1:~/project/", "", 0, nil)
	s, _ := newTestSyncer(runner, "")

	require.NoError(t, s.ExecuteSync(context.Background(), true))
	assert.Equal(t, 1, runner.CallsFor("rsync -az --delete --exclude .git ./ login1:~/project/"))
}

func TestExecuteSync_NotConfirmedIsNoop(t *testing.T) {
	runner := testutil.NewStubRunner()
	s, _ := newTestSyncer(runner, "")

	require.NoError(t, s.ExecuteSync(context.Background(), false))
	assert.Empty(t, runner.Calls())
}

func TestExecuteSync_RsyncFailure(t *testing.T) {
	runner := testutil.NewStubRunner()
	runner.Stub("rsync -az --delete --exclude .git ./ login1:~/project/", "", 12, nil)
	s, _ := newTestSyncer(runner, "")

	err := s.ExecuteSync(context.Background(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "12")
}
