package docker

import (
	"fmt"
	"strconv"
	"strings"
)

// LogsQuery selects which journald entries a logs command fetches.
type LogsQuery struct {
	// All drops any container id filter and fetches entries across
	// all containers of the image.
	All bool

	// Limit caps the number of entries. Negative means no limit.
	Limit int

	// ContainerID filters to a single container. Ignored when All is
	// set.
	ContainerID string
}

// ParseLogsArgs parses the logs argument forms: "a" (all containers),
// "n <count>" (limit), "i <id>" (filter to one container). Flags are
// order-independent. Errors are user-input errors; the caller must not
// reach the remote side after one.
func ParseLogsArgs(args []string) (LogsQuery, error) {
	q := LogsQuery{Limit: -1}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "a":
			q.All = true
		case "n":
			if i+1 >= len(args) {
				return LogsQuery{}, fmt.Errorf("n requires a count")
			}
			i++
			count, err := strconv.Atoi(args[i])
			if err != nil || count < 0 {
				return LogsQuery{}, fmt.Errorf("n requires a non-negative integer, got %q", args[i])
			}
			q.Limit = count
		case "i":
			if i+1 >= len(args) {
				return LogsQuery{}, fmt.Errorf("i requires a container id")
			}
			i++
			if len(args[i]) != IDLength {
				return LogsQuery{}, fmt.Errorf("container id must be %d characters, got %q", IDLength, args[i])
			}
			q.ContainerID = args[i]
		default:
			return LogsQuery{}, fmt.Errorf("unknown logs argument %q", args[i])
		}
	}
	return q, nil
}

// Logs renders the journald query for a launch. Entries carry the
// IMAGE_NAME and CONTAINER_ID fields set by the journald log driver.
func Logs(cfg Config, q LogsQuery) string {
	parts := []string{"journalctl", "--no-pager", "IMAGE_NAME=" + cfg.ImageName}
	if !q.All && q.ContainerID != "" {
		parts = append(parts, "CONTAINER_ID="+q.ContainerID)
	}
	if q.Limit >= 0 {
		parts = append(parts, "-n", strconv.Itoa(q.Limit))
	}
	return strings.Join(parts, " ")
}

// ValidateID checks an explicit short container id argument.
func ValidateID(id string) error {
	if len(id) != IDLength {
		return fmt.Errorf("container id must be %d characters, got %d", IDLength, len(id))
	}
	if strings.ContainsAny(id, " \t\n") {
		return fmt.Errorf("container id must not contain whitespace")
	}
	return nil
}
