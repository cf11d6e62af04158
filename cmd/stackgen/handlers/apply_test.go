package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfellner/stackgen/internal/k8sclient"
)

// fakeClusterClient records applies and answers secret lookups from a map.
type fakeClusterClient struct {
	secrets map[string]bool

	appliedManifests []byte
	appliedManager   string
	applyErr         error
}

func (f *fakeClusterClient) ApplyManifests(_ context.Context, manifests []byte, fieldManager string) error {
	f.appliedManifests = manifests
	f.appliedManager = fieldManager
	return f.applyErr
}

func (f *fakeClusterClient) HasSecret(_ context.Context, _, name string) (bool, error) {
	return f.secrets[name], nil
}

func withFakeClient(t *testing.T, client *fakeClusterClient) {
	t.Helper()
	orig := newClusterClient
	newClusterClient = func(string) (k8sclient.Client, error) {
		return client, nil
	}
	t.Cleanup(func() { newClusterClient = orig })
}

func TestApply_AppliesRenderedBundle(t *testing.T) {
	client := &fakeClusterClient{}
	withFakeClient(t, client)

	path := writeTestStack(t, testStack)

	err := Apply(context.Background(), ApplyOptions{File: path, Kubeconfig: "unused"})
	require.NoError(t, err)

	assert.Equal(t, "stackgen", client.appliedManager)
	assert.Contains(t, string(client.appliedManifests), "kind: Deployment")
}

func TestApply_MissingSecretAborts(t *testing.T) {
	client := &fakeClusterClient{secrets: map[string]bool{}}
	withFakeClient(t, client)

	path := writeTestStack(t, `
namespace: retail
services:
  inventory:
    image: {repository: inventory-service, tag: "1.0.0"}
    port: 8083
    secretRef: inventory-secrets
`)

	err := Apply(context.Background(), ApplyOptions{File: path, Kubeconfig: "unused"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret preflight failed")
	assert.Contains(t, err.Error(), `secret "inventory-secrets" not found`)
	assert.Nil(t, client.appliedManifests, "nothing must be applied when a referenced secret is missing")
}

func TestApply_ExistingSecretPasses(t *testing.T) {
	client := &fakeClusterClient{secrets: map[string]bool{"inventory-secrets": true}}
	withFakeClient(t, client)

	path := writeTestStack(t, `
namespace: retail
services:
  inventory:
    image: {repository: inventory-service, tag: "1.0.0"}
    port: 8083
    secretRef: inventory-secrets
`)

	err := Apply(context.Background(), ApplyOptions{File: path, Kubeconfig: "unused"})
	require.NoError(t, err)
	assert.NotNil(t, client.appliedManifests)
}

func TestApply_ValidationFailureBeforeClusterContact(t *testing.T) {
	orig := newClusterClient
	newClusterClient = func(string) (k8sclient.Client, error) {
		t.Fatal("client must not be built for an invalid stack")
		return nil, nil
	}
	t.Cleanup(func() { newClusterClient = orig })

	path := writeTestStack(t, `
services:
  web:
    image: {tag: "1.0"}
`)

	err := Apply(context.Background(), ApplyOptions{File: path, Kubeconfig: "unused"})
	require.Error(t, err)
}

func TestResolveKubeconfig(t *testing.T) {
	got, err := resolveKubeconfig("/explicit/path")
	require.NoError(t, err)
	assert.Equal(t, "/explicit/path", got)

	t.Setenv("KUBECONFIG", "/from/env")
	got, err = resolveKubeconfig("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", got)
}
