package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbruhn/dockhand/internal/dispatch"
)

// NewSubmitCmd creates the 'submit' command for launching a detached
// container.
func NewSubmitCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit [args...]",
		Short: "Build and launch a detached container on the remote host",
		Long: `Submit always builds the image first with the same configuration,
then runs it detached with the journald log driver. Extra arguments
are passed to the launched process.

On success the container id is recorded in the local launch history;
stop and logs resolve to the most recent launch by default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, dispatch.OpSubmit, args)
		},
	}
}
