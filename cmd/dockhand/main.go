package main

import (
	"fmt"
	"os"

	"github.com/tbruhn/dockhand/internal/cli"
	"github.com/tbruhn/dockhand/internal/dispatch"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := cli.New()
	app.SetVersion(version, commit, date)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if dispatch.IsUserError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
