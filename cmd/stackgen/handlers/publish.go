package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/jfellner/stackgen/internal/platform/s3"
	"github.com/jfellner/stackgen/internal/ui"
)

// Credentials for the artifact store come from the environment, never flags.
const (
	envAccessKey = "STACKGEN_S3_ACCESS_KEY"
	envSecretKey = "STACKGEN_S3_SECRET_KEY" //nolint:gosec // env var name, not a credential
)

// objectStore is the artifact-store surface Publish needs.
type objectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	PutBundle(ctx context.Context, bucket, key string, manifests []byte) error
}

// newObjectStore can be replaced in tests.
var newObjectStore = func(endpoint, region string) (objectStore, error) {
	accessKey := os.Getenv(envAccessKey)
	secretKey := os.Getenv(envSecretKey)
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("%s and %s must be set", envAccessKey, envSecretKey)
	}
	return s3.NewClient(endpoint, region, accessKey, secretKey)
}

// PublishOptions configures a publish run.
type PublishOptions struct {
	File        string
	Environment string
	Sets        []string

	Bucket   string
	Endpoint string
	Region   string

	// Key is the object key; empty derives manifests/<environment>.yaml.
	Key string
}

// Publish renders the stack and uploads the bundle to the artifact bucket
// for an external reconciler to pick up. A partially failed expansion is
// not published: a reconciler cannot tell a trimmed bundle from an
// intentional one, so only complete bundles leave the machine.
func Publish(ctx context.Context, opts PublishOptions) error {
	result, err := renderPipeline(opts.File, opts.Environment, opts.Sets)
	if err != nil {
		return err
	}
	if result.partial != nil {
		return result.partial
	}

	store, err := newObjectStore(opts.Endpoint, opts.Region)
	if err != nil {
		return err
	}

	if err := store.EnsureBucket(ctx, opts.Bucket); err != nil {
		return err
	}

	key := opts.Key
	if key == "" {
		env := result.stack.Environment
		if env == "" {
			env = "base"
		}
		key = fmt.Sprintf("manifests/%s.yaml", env)
	}

	if err := store.PutBundle(ctx, opts.Bucket, key, result.bundle); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", ui.Success("published"),
		ui.Dim(fmt.Sprintf("(%d document(s) to s3://%s/%s)", len(result.docs), opts.Bucket, key)))
	return nil
}
