// Command labbench is the CLI entrypoint for managing ML experiment
// workspaces: configuring models, training and testing with tracked
// snapshots, and renaming the scaffold package.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/labbench/internal/cli"
	"github.com/backmassage/labbench/internal/config"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	root := cli.NewRootCommand(&cfg, fmt.Sprintf("%s (%s)", version, commit))
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "labbench: %v\n", err)
		return 1
	}
	return 0
}
