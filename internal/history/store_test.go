package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbruhn/dockhand/internal/docker"
)

func testConfig() docker.Config {
	return docker.Config{
		Dockerfile: "Dockerfile",
		ImageName:  "trainer",
		GPUs:       "device=0",
		Volumes:    []docker.Volume{{Host: "/data", Container: "/data", Mode: "ro"}},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), FileName))
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_AppendThenLoad(t *testing.T) {
	store := newTestStore(t)
	rec := NewRecord(testConfig(), []string{"--epochs", "10"}, "abcdef012345", time.Unix(1756600000, 0))

	require.NoError(t, store.Append(rec))

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestStore_AppendPreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ids := []string{"aaaaaaaaaaaa", "bbbbbbbbbbbb", "cccccccccccc"}

	for i, id := range ids {
		rec := NewRecord(testConfig(), nil, id, time.Unix(int64(1756600000+i), 0))
		require.NoError(t, store.Append(rec))
	}

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, records[i].ContainerID)
	}
}

func TestStore_MostRecent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.MostRecent()
	assert.ErrorIs(t, err, ErrEmptyHistory)

	rec := NewRecord(testConfig(), nil, "abcdef012345", time.Unix(1756600000, 0))
	require.NoError(t, store.Append(rec))

	got, err := store.MostRecent()
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestNewRecord_SnapshotsConfig(t *testing.T) {
	cfg := testConfig()
	args := []string{"--seed", "42"}

	rec := NewRecord(cfg, args, "abcdef012345", time.Unix(1756600000, 0))

	// Mutating the live config and args must not reach the record.
	cfg.Volumes[0].Host = "/elsewhere"
	args[0] = "--changed"

	assert.Equal(t, "/data", rec.Config.Volumes[0].Host)
	assert.Equal(t, "--seed", rec.Config.Arguments[0])
	assert.EqualValues(t, 1756600000, rec.Timestamp)
}

func TestStore_PersistedLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	store := NewStore(path)
	rec := NewRecord(testConfig(), []string{"--epochs", "10"}, "abcdef012345", time.Unix(1756600000, 0))
	require.NoError(t, store.Append(rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	for _, field := range []string{
		`"config"`, `"dockerfile"`, `"gpus"`, `"volumes"`,
		`"imagename"`, `"arguments"`, `"container_id"`, `"timestamp"`,
	} {
		assert.Contains(t, text, field)
	}
}
