// Package syncer pushes local working-tree changes to the remote host
// before a build, with a mandatory interactive confirmation.
package syncer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tbruhn/dockhand/internal/config"
	"github.com/tbruhn/dockhand/internal/remote"
)

// Syncer detects local changes with git and transfers the working tree
// with rsync.
type Syncer struct {
	host    string
	workdir string
	exclude []string

	runner      remote.Runner
	in          io.Reader
	out         io.Writer
	interactive bool
}

// New creates a syncer for the configured remote. Stdin decides
// whether confirmation can be interactive.
func New(cfg *config.Config) *Syncer {
	return &Syncer{
		host:        cfg.Remote.Host,
		workdir:     cfg.Remote.Workdir,
		exclude:     cfg.Sync.Exclude,
		runner:      remote.OSRunner{},
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// CheckAndConfirmChanges lists local changes and asks the user to
// confirm the push. No changes means nothing to confirm and the
// operation proceeds. With changes present and no terminal to ask on,
// the answer is no.
func (s *Syncer) CheckAndConfirmChanges(ctx context.Context) (bool, error) {
	output, code, err := s.runner.Run(ctx, "git", "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("detect local changes: %w", err)
	}
	if code != 0 {
		return false, fmt.Errorf("git status exited with status %d", code)
	}

	changes := parsePorcelain(output)
	if len(changes) == 0 {
		return true, nil
	}

	fmt.Fprintf(s.out, "Local changes to push:\n")
	for _, change := range changes {
		fmt.Fprintf(s.out, "  %s\n", change)
	}

	if !s.interactive {
		fmt.Fprintf(s.out, "No terminal to confirm on; not pushing.\n")
		return false, nil
	}

	fmt.Fprintf(s.out, "Push local changes to %s? [y/N] ", s.host)
	answer, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ExecuteSync transfers the working tree to the remote working
// directory. A false confirmation is a no-op.
func (s *Syncer) ExecuteSync(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return nil
	}

	args := []string{"-az", "--delete"}
	for _, pattern := range s.exclude {
		args = append(args, "--exclude", pattern)
	}
	args = append(args, "./", fmt.Sprintf("%s:%s/", s.host, s.workdir))

	_, code, err := s.runner.Run(ctx, "rsync", args...)
	if err != nil {
		return fmt.Errorf("rsync: %w", err)
	}
	if code != 0 {
		return fmt.Errorf("rsync exited with status %d", code)
	}
	return nil
}

func parsePorcelain(output string) []string {
	var changes []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		changes = append(changes, line)
	}
	return changes
}
