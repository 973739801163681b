// Package config loads the dockhand configuration: remote host and
// working directory, the docker launch section, and the sync toggle.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tbruhn/dockhand/internal/docker"
)

// FileName is the config file looked up in the invocation's working
// directory.
const FileName = ".dockhand.yaml"

// RemoteConfig identifies the host and directory commands run in.
type RemoteConfig struct {
	// Host is the ssh destination (alias or user@host).
	Host string `yaml:"host"`

	// Workdir is the remote directory commands execute in.
	Workdir string `yaml:"workdir"`
}

// SyncConfig controls the pre-build push of local changes.
type SyncConfig struct {
	// Enabled gates the sync step before build and submit.
	Enabled bool `yaml:"enabled"`

	// Exclude lists rsync exclude patterns.
	Exclude []string `yaml:"exclude"`
}

// Config holds all configuration for one invocation. It is loaded once
// and passed by value into the dispatcher; there is no ambient global.
type Config struct {
	Remote RemoteConfig  `yaml:"remote"`
	Docker docker.Config `yaml:"docker"`
	Sync   SyncConfig    `yaml:"sync"`
}

// Load reads configuration from dir. Defaults apply first, then the
// config file (optional), then DOCKHAND_* environment overrides, then
// validation.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", FileName, err)
		}
	}
	// Missing config file is not an error; env vars may complete it.

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Remote.Host == "" {
		return fmt.Errorf("remote.host is required")
	}
	if cfg.Remote.Workdir == "" {
		return fmt.Errorf("remote.workdir is required")
	}
	if cfg.Docker.ImageName == "" {
		return fmt.Errorf("docker.imagename is required")
	}
	if cfg.Docker.Dockerfile == "" {
		return fmt.Errorf("docker.dockerfile cannot be empty")
	}
	for i, v := range cfg.Docker.Volumes {
		if v.Host == "" || v.Container == "" {
			return fmt.Errorf("docker.volumes[%d]: host and container paths are required", i)
		}
		switch v.Mode {
		case "ro", "rw":
		default:
			return fmt.Errorf("docker.volumes[%d]: mode must be \"ro\" or \"rw\", got %q", i, v.Mode)
		}
	}
	return nil
}
