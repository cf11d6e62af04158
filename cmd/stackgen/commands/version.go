package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set at build time via SetVersionInfo.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo stores build metadata for the version command.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
}

// Version returns the command that prints build information.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("stackgen %s (commit %s, built %s)\n", buildVersion, buildCommit, buildDate)
		},
	}
}
