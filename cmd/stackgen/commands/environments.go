package commands

import (
	"github.com/spf13/cobra"

	"github.com/jfellner/stackgen/cmd/stackgen/handlers"
)

// Environments returns the command that lists available overlays.
func Environments() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "environments",
		Aliases: []string{"envs"},
		Short:   "List environment overlays found next to the stack file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Environments(file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "stack.yaml", "Path to the stack file")

	return cmd
}
