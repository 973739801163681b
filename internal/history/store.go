// Package history persists the launch log: one record per successful
// detached run, stored as a JSON array in a single file next to the
// invocation's working directory.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tbruhn/dockhand/internal/docker"
)

// FileName is the history file, relative to the working directory.
const FileName = ".dockhand_history.json"

// ErrEmptyHistory indicates no launch has been recorded yet.
var ErrEmptyHistory = errors.New("no launches recorded yet")

// LaunchConfig is the configuration snapshot stored with a record. It
// is copied by value at append time; later config edits do not touch
// persisted records.
type LaunchConfig struct {
	Dockerfile string          `json:"dockerfile"`
	GPUs       string          `json:"gpus"`
	Volumes    []docker.Volume `json:"volumes"`
	ImageName  string          `json:"imagename"`
	Arguments  []string        `json:"arguments"`
}

// Record is one durable launch entry.
type Record struct {
	Config      LaunchConfig `json:"config"`
	ContainerID string       `json:"container_id"`
	Timestamp   int64        `json:"timestamp"`
}

// NewRecord snapshots the launch configuration and arguments into a
// record. Slices are copied so the record is detached from the live
// config.
func NewRecord(cfg docker.Config, args []string, containerID string, at time.Time) Record {
	volumes := make([]docker.Volume, len(cfg.Volumes))
	copy(volumes, cfg.Volumes)
	arguments := make([]string, len(args))
	copy(arguments, args)

	return Record{
		Config: LaunchConfig{
			Dockerfile: cfg.Dockerfile,
			GPUs:       cfg.GPUs,
			Volumes:    volumes,
			ImageName:  cfg.ImageName,
			Arguments:  arguments,
		},
		ContainerID: containerID,
		Timestamp:   at.Unix(),
	}
}

// Store is a file-backed launch log. Append rewrites the whole file;
// it is not safe under concurrent writers (last writer wins on the
// entire array). One CLI invocation at a time is assumed.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path. The file is
// created lazily on first append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns all records in insertion order. A missing file is an
// empty history, not an error.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", s.path, err)
	}
	return records, nil
}

// Append reads the full log, appends the record, and writes the log
// back.
func (s *Store) Append(rec Record) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// MostRecent returns the last appended record, or ErrEmptyHistory.
func (s *Store) MostRecent() (Record, error) {
	records, err := s.Load()
	if err != nil {
		return Record{}, err
	}
	if len(records) == 0 {
		return Record{}, ErrEmptyHistory
	}
	return records[len(records)-1], nil
}
