package commands

import (
	"github.com/spf13/cobra"

	"github.com/jfellner/stackgen/cmd/stackgen/handlers"
)

// Render returns the command that renders the manifest stream.
//
// The stream is written to stdout by default so it pipes straight into
// kubectl apply -f - or into a file for review.
func Render() *cobra.Command {
	var opts handlers.RenderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the manifest stream for a stack",
		Long: `Render the Kubernetes manifest stream for a stack.

The base stack file is merged with the selected environment overlay and any
--set overrides, validated, and expanded into ConfigMap, Deployment and
Service documents per enabled service.

Examples:
  # Render the base stack to stdout
  stackgen render

  # Render the prod environment to a file
  stackgen render -e prod -o manifests.yaml

  # Bump a replica count for one run
  stackgen render --set services.inventory.replicas=3`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Render(opts)
		},
	}

	addStackFlags(cmd, &opts.File, &opts.Environment, &opts.Sets)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write manifests to a file instead of stdout")

	return cmd
}
