// Package main is the entry point for the stackgen CLI.
//
// stackgen renders a deterministic Kubernetes manifest stream for a fleet
// of services described by a layered stack file (base values plus
// per-environment overlays plus --set overrides). The rendered stream can
// be written out, applied to a cluster with Server-Side Apply, or
// published to an S3-compatible artifact bucket for GitOps pickup.
//
// Commands: init, validate, render, apply, publish, environments.
//
// For detailed usage information, run:
//
//	stackgen --help
package main

import (
	"fmt"
	"os"

	"github.com/jfellner/stackgen/cmd/stackgen/commands"
	"github.com/jfellner/stackgen/internal/ui"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err))
		os.Exit(1)
	}
}
