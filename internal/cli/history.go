package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tbruhn/dockhand/internal/history"
)

// NewHistoryCmd creates the 'history' command. History is local only;
// it needs neither configuration nor the remote host.
func NewHistoryCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show past container launches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}

			store := history.NewStore(filepath.Join(cwd, history.FileName))
			records, err := store.Load()
			if err != nil {
				return err
			}

			NewPresenter(os.Stdout).ShowHistory(records)
			return nil
		},
	}
}
