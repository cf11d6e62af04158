package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_Subcommands(t *testing.T) {
	t.Parallel()

	root := Root()
	assert.Equal(t, "stackgen", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	want := []string{"init", "validate", "render", "apply", "publish", "environments", "version", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %q", name)
	}
}

func assertStackFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()

	file := cmd.Flags().Lookup("file")
	require.NotNil(t, file)
	assert.Equal(t, "f", file.Shorthand)
	assert.Equal(t, "stack.yaml", file.DefValue)

	env := cmd.Flags().Lookup("env")
	require.NotNil(t, env)
	assert.Equal(t, "e", env.Shorthand)

	require.NotNil(t, cmd.Flags().Lookup("set"))
}

func TestRender_Flags(t *testing.T) {
	t.Parallel()

	cmd := Render()
	assertStackFlags(t, cmd)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Empty(t, output.DefValue, "render defaults to stdout")
}

func TestValidate_Flags(t *testing.T) {
	t.Parallel()

	assertStackFlags(t, Validate())
}

func TestApply_Flags(t *testing.T) {
	t.Parallel()

	cmd := Apply()
	assertStackFlags(t, cmd)
	require.NotNil(t, cmd.Flags().Lookup("kubeconfig"))
}

func TestPublish_Flags(t *testing.T) {
	t.Parallel()

	cmd := Publish()
	assertStackFlags(t, cmd)

	for _, name := range []string{"bucket", "endpoint", "region", "key"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
	assert.Equal(t, "us-east-1", cmd.Flags().Lookup("region").DefValue)

	required := cmd.Flags().Lookup("bucket").Annotations[cobra.BashCompOneRequiredFlag]
	assert.Equal(t, []string{"true"}, required, "bucket must be required")
}

func TestEnvironments_Aliases(t *testing.T) {
	t.Parallel()

	cmd := Environments()
	assert.Contains(t, cmd.Aliases, "envs")
	require.NotNil(t, cmd.Flags().Lookup("file"))
}

func TestInit_Flags(t *testing.T) {
	t.Parallel()

	cmd := Init()
	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "stack.yaml", output.DefValue)
}

func TestCompletion_Args(t *testing.T) {
	t.Parallel()

	cmd := Completion()
	assert.ElementsMatch(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.Error(t, cmd.Args(cmd, []string{"tcsh"}))
	assert.NoError(t, cmd.Args(cmd, []string{"zsh"}))
}
