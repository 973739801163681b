package docker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogsArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    LogsQuery
		wantErr bool
	}{
		{
			name: "empty",
			args: nil,
			want: LogsQuery{Limit: -1},
		},
		{
			name: "all",
			args: []string{"a"},
			want: LogsQuery{All: true, Limit: -1},
		},
		{
			name: "limit",
			args: []string{"n", "5"},
			want: LogsQuery{Limit: 5},
		},
		{
			name: "limit zero",
			args: []string{"n", "0"},
			want: LogsQuery{Limit: 0},
		},
		{
			name: "id filter",
			args: []string{"i", "abcdef012345"},
			want: LogsQuery{Limit: -1, ContainerID: "abcdef012345"},
		},
		{
			name: "order independent",
			args: []string{"i", "abcdef012345", "n", "10"},
			want: LogsQuery{Limit: 10, ContainerID: "abcdef012345"},
		},
		{
			name: "all overrides id regardless of order",
			args: []string{"i", "abcdef012345", "a"},
			want: LogsQuery{All: true, Limit: -1, ContainerID: "abcdef012345"},
		},
		{
			name:    "limit not an integer",
			args:    []string{"n", "five"},
			wantErr: true,
		},
		{
			name:    "limit negative",
			args:    []string{"n", "-1"},
			wantErr: true,
		},
		{
			name:    "limit missing",
			args:    []string{"n"},
			wantErr: true,
		},
		{
			name:    "id wrong length",
			args:    []string{"i", "abc"},
			wantErr: true,
		},
		{
			name:    "id missing",
			args:    []string{"i"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseLogsArgs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestLogs(t *testing.T) {
	cfg := baseConfig()

	t.Run("image filter only", func(t *testing.T) {
		cmd := Logs(cfg, LogsQuery{Limit: -1})
		assert.Equal(t, "journalctl --no-pager IMAGE_NAME=trainer", cmd)
	})

	t.Run("container filter", func(t *testing.T) {
		cmd := Logs(cfg, LogsQuery{Limit: -1, ContainerID: "abcdef012345"})
		assert.Equal(t, "journalctl --no-pager IMAGE_NAME=trainer CONTAINER_ID=abcdef012345", cmd)
	})

	t.Run("limit clause without id filter", func(t *testing.T) {
		cmd := Logs(cfg, LogsQuery{Limit: 5})
		assert.Equal(t, "journalctl --no-pager IMAGE_NAME=trainer -n 5", cmd)
	})

	t.Run("all drops id filter", func(t *testing.T) {
		cmd := Logs(cfg, LogsQuery{All: true, Limit: -1, ContainerID: "abcdef012345"})
		assert.NotContains(t, cmd, "CONTAINER_ID")
	})
}
