package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbruhn/dockhand/internal/dispatch"
)

// NewBuildCmd creates the 'build' command for building the image on
// the remote host.
func NewBuildCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "build [args...]",
		Short: "Build the configured image on the remote host",
		Long: `Build runs docker build on the remote host using the configured
Dockerfile and image name. Extra arguments are passed through to
docker build.

If sync is enabled, local changes are pushed first after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, dispatch.OpBuild, args)
		},
	}
}
