package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "DOCKHAND_HOST",
		apply: func(c *Config, v string) {
			c.Remote.Host = v
		},
	},
	{
		envVar: "DOCKHAND_WORKDIR",
		apply: func(c *Config, v string) {
			c.Remote.Workdir = v
		},
	},
	{
		envVar: "DOCKHAND_IMAGE",
		apply: func(c *Config, v string) {
			c.Docker.ImageName = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable
// values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
