// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the stackgen CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stackgen",
		Short:         "Render Kubernetes manifests for a service stack from layered values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Render())
	cmd.AddCommand(Apply())
	cmd.AddCommand(Publish())
	cmd.AddCommand(Environments())

	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// addStackFlags binds the flags shared by every command that loads a stack.
func addStackFlags(cmd *cobra.Command, file *string, env *string, sets *[]string) {
	cmd.Flags().StringVarP(file, "file", "f", "stack.yaml", "Path to the stack file")
	cmd.Flags().StringVarP(env, "env", "e", "", "Environment overlay to merge (stack-<env>.yaml)")
	cmd.Flags().StringArrayVar(sets, "set", nil, "Override values (key=value, repeatable)")
}
