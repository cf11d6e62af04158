package commands

import (
	"github.com/spf13/cobra"

	"github.com/jfellner/stackgen/cmd/stackgen/handlers"
)

// Validate returns the command that checks a stack without rendering.
func Validate() *cobra.Command {
	var opts handlers.RenderOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a stack without rendering",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(opts)
		},
	}

	addStackFlags(cmd, &opts.File, &opts.Environment, &opts.Sets)

	return cmd
}
