package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfellner/stackgen/internal/values"
	"github.com/jfellner/stackgen/internal/values/wizard"
)

func stubInit(t *testing.T, result *wizard.Result, wizardErr error) (written *string) {
	t.Helper()

	origExists := fileExists
	origWizard := runWizard
	origWrite := writeStarter
	t.Cleanup(func() {
		fileExists = origExists
		runWizard = origWizard
		writeStarter = origWrite
	})

	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return result, wizardErr
	}

	written = new(string)
	writeStarter = func(_ *wizard.Result, path string) error {
		*written = path
		return nil
	}
	return written
}

func TestInit_WritesStarterFile(t *testing.T) {
	result := &wizard.Result{
		ServiceName:     "inventory",
		ImageRepository: "inventory-service",
		ImageTag:        "1.0.0",
		Port:            8083,
		Exposure:        values.ExposureInternal,
	}
	written := stubInit(t, result, nil)

	err := Init(context.Background(), "stack.yaml")
	require.NoError(t, err)
	assert.Equal(t, "stack.yaml", *written)
}

func TestInit_WizardCancel(t *testing.T) {
	written := stubInit(t, nil, assert.AnError)

	err := Init(context.Background(), "stack.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
	assert.Empty(t, *written, "nothing must be written when the wizard is canceled")
}
