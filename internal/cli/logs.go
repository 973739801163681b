package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbruhn/dockhand/internal/dispatch"
)

// NewLogsCmd creates the 'logs' command querying journald on the
// remote host.
func NewLogsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logs [a] [n <count>] [i <id>]",
		Short: "Fetch container logs from the remote journal",
		Long: `Logs queries the remote journal for entries of the configured image.

Arguments (order-independent):
  a          fetch across all containers of the image
  n <count>  limit to the last <count> entries
  i <id>     filter to a specific 12-character container id

With no arguments, logs follows the most recently recorded launch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, dispatch.OpLogs, args)
		},
	}
}
