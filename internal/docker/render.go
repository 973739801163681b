// Package docker renders remote docker command strings from a launch
// configuration. Rendering is pure: same inputs, byte-identical output,
// no I/O.
package docker

import (
	"strings"
)

// IDLength is the fixed width of a short container identifier. The
// first IDLength characters of `docker run -d` output identify the
// container everywhere in this tool (stop, logs, history); this
// truncation is a contract, not a convenience.
const IDLength = 12

// Config describes the image to build and how to launch it.
type Config struct {
	// Dockerfile is the path to the Dockerfile on the remote side,
	// relative to the remote working directory.
	Dockerfile string `yaml:"dockerfile"`

	// ImageName is the tag applied on build and run.
	ImageName string `yaml:"imagename"`

	// GPUs is a docker GPU selector (e.g. "all", "device=0").
	// Empty means no GPU flag is rendered.
	GPUs string `yaml:"gpus"`

	// Volumes are bind mounts, rendered in declaration order.
	Volumes []Volume `yaml:"volumes"`
}

// Volume is a single bind mount.
type Volume struct {
	Host      string `yaml:"host" json:"host"`
	Container string `yaml:"container" json:"container"`
	Mode      string `yaml:"mode" json:"mode"`
}

// String renders the mount in docker -v syntax.
func (v Volume) String() string {
	return v.Host + ":" + v.Container + ":" + v.Mode
}

// Build renders the image build command. Pass-through args are placed
// before the build context so docker parses them as flags.
func Build(cfg Config, args []string) string {
	parts := []string{"docker", "build", "-f", cfg.Dockerfile, "-t", cfg.ImageName}
	parts = append(parts, args...)
	parts = append(parts, ".")
	return strings.Join(parts, " ")
}

// Run renders the detached launch command. The journald log driver is
// fixed so that Logs can query the launch by image name and container
// id afterwards.
func Run(cfg Config, args []string) string {
	parts := []string{"docker", "run", "-d", "--log-driver=journald"}
	for _, v := range cfg.Volumes {
		parts = append(parts, "-v", v.String())
	}
	if cfg.GPUs != "" {
		parts = append(parts, "--gpus", cfg.GPUs)
	}
	parts = append(parts, cfg.ImageName)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}

// Stop renders the stop command for a resolved container id.
func Stop(id string) string {
	return "docker container stop " + id
}

// Stats renders the running-container listing. No configuration
// dependency.
func Stats() string {
	return "docker ps"
}

// ShortID extracts the short container identifier from the captured
// output of a detached run. Returns "" if the output does not contain
// at least IDLength characters of identifier.
func ShortID(output string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	if len(line) < IDLength {
		return ""
	}
	return line[:IDLength]
}
