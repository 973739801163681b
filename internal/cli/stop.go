package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbruhn/dockhand/internal/dispatch"
)

// NewStopCmd creates the 'stop' command.
// Args: container-id (optional; defaults to the most recent launch)
func NewStopCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop [container-id]",
		Short: "Stop a container on the remote host",
		Long: `Stop stops a container by its 12-character id. Without an argument
the most recently recorded launch is stopped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, dispatch.OpStop, args)
		},
	}
}
