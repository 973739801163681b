// Package dispatch maps a subcommand to its remote command, executes
// it, interprets the exit status, and keeps the launch history current.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tbruhn/dockhand/internal/config"
	"github.com/tbruhn/dockhand/internal/docker"
	"github.com/tbruhn/dockhand/internal/history"
	"github.com/tbruhn/dockhand/internal/remote"
)

// Op is a supported subcommand. The set is closed; routing over it is
// an exhaustive switch.
type Op int

const (
	OpBuild Op = iota
	OpSubmit
	OpStats
	OpStop
	OpLogs
	OpHistory
)

var opNames = map[Op]string{
	OpBuild:   "build",
	OpSubmit:  "submit",
	OpStats:   "stats",
	OpStop:    "stop",
	OpLogs:    "logs",
	OpHistory: "history",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// ParseOp resolves a subcommand name. Unknown names are user-input
// errors, reported before any collaborator is touched.
func ParseOp(name string) (Op, error) {
	for op, n := range opNames {
		if n == name {
			return op, nil
		}
	}
	return 0, Usagef("unknown subcommand %q", name)
}

// Syncer pushes local working-tree changes to the remote host. Both a
// declined confirmation and a failed transfer abort the operation.
type Syncer interface {
	CheckAndConfirmChanges(ctx context.Context) (bool, error)
	ExecuteSync(ctx context.Context, confirmed bool) error
}

// HistoryStore is the durable launch log consumed by submit, stop and
// logs.
type HistoryStore interface {
	Load() ([]history.Record, error)
	Append(rec history.Record) error
	MostRecent() (history.Record, error)
}

// Presenter renders outcomes. BeginPhase shows transient progress
// around a long-running remote command; the returned func ends it.
type Presenter interface {
	ShowOutput(s string)
	ShowHistory(records []history.Record)
	BeginPhase(label string) (done func())
}

// Dispatcher routes one subcommand through sync, render, execute,
// interpret, and history update. It issues at most one remote command
// at a time and blocks until it completes.
type Dispatcher struct {
	cfg   config.Config
	exec  remote.Executor
	store HistoryStore
	sync  Syncer
	out   Presenter
	now   func() time.Time
}

// New wires a dispatcher from its collaborators.
func New(cfg config.Config, exec remote.Executor, store HistoryStore, sync Syncer, out Presenter) *Dispatcher {
	return &Dispatcher{
		cfg:   cfg,
		exec:  exec,
		store: store,
		sync:  sync,
		out:   out,
		now:   time.Now,
	}
}

// Run executes one subcommand to completion. Every returned error is
// terminal for the invocation.
func (d *Dispatcher) Run(ctx context.Context, op Op, args []string) error {
	switch op {
	case OpBuild:
		return d.build(ctx, args)
	case OpSubmit:
		return d.submit(ctx, args)
	case OpStats:
		return d.stats(ctx)
	case OpStop:
		return d.stop(ctx, args)
	case OpLogs:
		return d.logs(ctx, args)
	case OpHistory:
		return d.history()
	default:
		return Usagef("unknown subcommand %q", op)
	}
}

func (d *Dispatcher) build(ctx context.Context, args []string) error {
	if err := d.syncGate(ctx); err != nil {
		return err
	}
	return d.runBuild(ctx, args)
}

// submit builds the image with the same configuration, then launches
// it detached. Build failure aborts before any run attempt; a launch
// record is appended only after a verified zero exit.
func (d *Dispatcher) submit(ctx context.Context, args []string) error {
	if err := d.syncGate(ctx); err != nil {
		return err
	}
	if err := d.runBuild(ctx, nil); err != nil {
		return err
	}

	cmd := docker.Run(d.cfg.Docker, args)
	res, err := d.execPhase(ctx, "Starting container", cmd)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &RemoteExitError{Command: cmd, ExitCode: res.ExitCode}
	}

	id := docker.ShortID(res.Output)
	if id == "" {
		return fmt.Errorf("docker run output did not contain a container id: %q", res.Output)
	}

	rec := history.NewRecord(d.cfg.Docker, args, id, d.now())
	if err := d.store.Append(rec); err != nil {
		// The container is up; make sure its identity reaches the
		// user even though the record was lost.
		return fmt.Errorf("container %s is running but its launch record could not be saved: %w", id, err)
	}

	d.out.ShowOutput("Started container " + id)
	return nil
}

func (d *Dispatcher) stats(ctx context.Context) error {
	res, err := d.exec.Exec(ctx, docker.Stats(), d.cfg.Remote.Workdir)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &RemoteExitError{Command: docker.Stats(), ExitCode: res.ExitCode}
	}
	d.out.ShowOutput(res.Output)
	return nil
}

func (d *Dispatcher) stop(ctx context.Context, args []string) error {
	var id string
	if len(args) > 0 {
		if err := docker.ValidateID(args[0]); err != nil {
			return Usagef("stop: %v", err)
		}
		id = args[0]
	} else {
		rec, err := d.store.MostRecent()
		if err != nil {
			return fmt.Errorf("stop: %w", err)
		}
		id = rec.ContainerID
	}

	cmd := docker.Stop(id)
	res, err := d.execPhase(ctx, "Stopping container", cmd)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &RemoteExitError{Command: cmd, ExitCode: res.ExitCode}
	}

	d.out.ShowOutput("Stopped container " + id)
	return nil
}

func (d *Dispatcher) logs(ctx context.Context, args []string) error {
	var q docker.LogsQuery
	if len(args) == 0 {
		// Bare logs follows the most recent launch.
		rec, err := d.store.MostRecent()
		if err != nil {
			return fmt.Errorf("logs: %w", err)
		}
		q = docker.LogsQuery{Limit: -1, ContainerID: rec.ContainerID}
	} else {
		var err error
		q, err = docker.ParseLogsArgs(args)
		if err != nil {
			return Usagef("logs: %v", err)
		}
	}

	cmd := docker.Logs(d.cfg.Docker, q)
	res, err := d.exec.Exec(ctx, cmd, d.cfg.Remote.Workdir)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &RemoteExitError{Command: cmd, ExitCode: res.ExitCode}
	}
	d.out.ShowOutput(res.Output)
	return nil
}

func (d *Dispatcher) history() error {
	records, err := d.store.Load()
	if err != nil {
		return err
	}
	d.out.ShowHistory(records)
	return nil
}

// syncGate runs the confirmation and transfer before mutating
// operations. A rejection or a sync failure both abort with
// ErrSyncAborted; history stays untouched.
func (d *Dispatcher) syncGate(ctx context.Context) error {
	if !d.cfg.Sync.Enabled {
		return nil
	}
	ok, err := d.sync.CheckAndConfirmChanges(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyncAborted, err)
	}
	if !ok {
		return ErrSyncAborted
	}
	if err := d.sync.ExecuteSync(ctx, ok); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncAborted, err)
	}
	return nil
}

func (d *Dispatcher) runBuild(ctx context.Context, args []string) error {
	cmd := docker.Build(d.cfg.Docker, args)
	res, err := d.execPhase(ctx, "Building image", cmd)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &RemoteExitError{Command: cmd, ExitCode: res.ExitCode}
	}
	return nil
}

func (d *Dispatcher) execPhase(ctx context.Context, label, cmd string) (remote.Result, error) {
	done := d.out.BeginPhase(label)
	defer done()
	return d.exec.Exec(ctx, cmd, d.cfg.Remote.Workdir)
}

// IsUserError reports whether err should be shown as a usage problem
// rather than an execution failure.
func IsUserError(err error) bool {
	var usage *UsageError
	return errors.As(err, &usage) || errors.Is(err, history.ErrEmptyHistory)
}
