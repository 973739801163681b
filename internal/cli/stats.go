package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbruhn/dockhand/internal/dispatch"
)

// NewStatsCmd creates the 'stats' command listing running containers.
func NewStatsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "List running containers on the remote host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, dispatch.OpStats, args)
		},
	}
}
