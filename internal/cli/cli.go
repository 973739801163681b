// Package cli wires the cobra command tree and renders results for the
// terminal.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tbruhn/dockhand/internal/config"
	"github.com/tbruhn/dockhand/internal/dispatch"
	"github.com/tbruhn/dockhand/internal/history"
	"github.com/tbruhn/dockhand/internal/remote"
	"github.com/tbruhn/dockhand/internal/syncer"
)

// App represents the CLI application with all wired dependencies
type App struct {
	rootCmd *cobra.Command

	verbose bool

	// Version information
	version string
	commit  string
	date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "dockhand",
		Short: "Drive docker workloads on a remote HPC login node",
		Long: `Dockhand builds and launches containers on a remote host over
your existing ssh configuration, and keeps a local log of past
launches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output")

	a.rootCmd.AddCommand(
		NewBuildCmd(a),
		NewSubmitCmd(a),
		NewStatsCmd(a),
		NewStopCmd(a),
		NewLogsCmd(a),
		NewHistoryCmd(a),
		NewVersionCmd(a),
	)
}

// dispatcher loads configuration from the working directory and wires
// the dispatcher with its live collaborators.
func (a *App) dispatcher() (*dispatch.Dispatcher, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	exec := remote.NewSSH(cfg.Remote.Host)
	store := history.NewStore(filepath.Join(cwd, history.FileName))
	sync := syncer.New(cfg)
	out := NewPresenter(os.Stdout)

	return dispatch.New(*cfg, exec, store, sync, out), nil
}

// run dispatches one subcommand through a freshly wired dispatcher.
func (a *App) run(cmd *cobra.Command, op dispatch.Op, args []string) error {
	d, err := a.dispatcher()
	if err != nil {
		return err
	}
	return d.Run(cmd.Context(), op, args)
}
