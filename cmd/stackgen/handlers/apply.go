package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jfellner/stackgen/internal/k8sclient"
	"github.com/jfellner/stackgen/internal/ui"
)

// FieldManager identifies stackgen to the API server for Server-Side Apply.
const FieldManager = "stackgen"

// newClusterClient can be replaced in tests.
var newClusterClient = k8sclient.NewFromKubeconfigFile

// ApplyOptions configures an apply run.
type ApplyOptions struct {
	File        string
	Environment string
	Sets        []string

	// Kubeconfig is the kubeconfig path; empty falls back to $KUBECONFIG
	// and then ~/.kube/config.
	Kubeconfig string
}

// Apply renders the stack and applies the resulting stream to the cluster
// in order. Referenced secrets are preflighted first: a workload pointing
// at a missing Secret would never start, so that aborts before anything is
// applied. Expansion errors do not block applying the documents that did
// render; they are reported at the end of the run.
func Apply(ctx context.Context, opts ApplyOptions) error {
	result, err := renderPipeline(opts.File, opts.Environment, opts.Sets)
	if err != nil {
		return err
	}

	kubeconfig, err := resolveKubeconfig(opts.Kubeconfig)
	if err != nil {
		return err
	}

	client, err := newClusterClient(kubeconfig)
	if err != nil {
		return err
	}

	if err := preflightSecrets(ctx, client, result); err != nil {
		return err
	}

	if err := client.ApplyManifests(ctx, result.bundle, FieldManager); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", ui.Success("applied"),
		ui.Dim(fmt.Sprintf("(%d document(s))", len(result.docs))))

	return result.partial
}

// preflightSecrets checks that every referenced Secret exists before
// anything is applied. Only existence is checked; secret material stays in
// the cluster.
func preflightSecrets(ctx context.Context, client k8sclient.Client, result *renderResult) error {
	var missing []error

	for i := range result.stack.Services {
		svc := &result.stack.Services[i]
		if !svc.IsEnabled() || svc.SecretRef == "" {
			continue
		}

		exists, err := client.HasSecret(ctx, result.stack.Namespace, svc.SecretRef)
		if err != nil {
			return err
		}
		if !exists {
			missing = append(missing, fmt.Errorf("service %q: secret %q not found", svc.Name, svc.SecretRef))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("secret preflight failed: %w", errors.Join(missing...))
	}
	return nil
}

// resolveKubeconfig picks the kubeconfig path: flag, then $KUBECONFIG,
// then ~/.kube/config.
func resolveKubeconfig(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate kubeconfig: %w", err)
	}
	return filepath.Join(home, ".kube", "config"), nil
}
