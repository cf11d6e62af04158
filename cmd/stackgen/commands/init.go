package commands

import (
	"github.com/spf13/cobra"

	"github.com/jfellner/stackgen/cmd/stackgen/handlers"
)

// Init returns the command that runs the starter wizard.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter stack file interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "stack.yaml", "Where to write the stack file")

	return cmd
}
