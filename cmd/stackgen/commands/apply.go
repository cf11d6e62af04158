package commands

import (
	"github.com/spf13/cobra"

	"github.com/jfellner/stackgen/cmd/stackgen/handlers"
)

// Apply returns the command that renders a stack and applies it to the
// cluster using Server-Side Apply.
func Apply() *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Render a stack and apply it to the cluster",
		Long: `Render the manifest stream and apply it with Server-Side Apply.

Documents are applied in stream order, so each service's ConfigMap exists
before the Deployment that references it. Referenced secrets are checked
for existence before anything is applied.

Examples:
  # Apply the prod environment
  stackgen apply -e prod

  # Apply with an explicit kubeconfig
  stackgen apply --kubeconfig ./secrets/kubeconfig`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), opts)
		},
	}

	addStackFlags(cmd, &opts.File, &opts.Environment, &opts.Sets)
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to kubeconfig (default: $KUBECONFIG, then ~/.kube/config)")

	return cmd
}
