package config

import "github.com/tbruhn/dockhand/internal/docker"

const (
	DefaultDockerfile = "Dockerfile"
)

// Default returns the configuration before file and environment values
// are applied.
func Default() *Config {
	return &Config{
		Docker: docker.Config{
			Dockerfile: DefaultDockerfile,
		},
		Sync: SyncConfig{
			Enabled: true,
			Exclude: []string{".git"},
		},
	}
}
