package commands

import (
	"github.com/spf13/cobra"

	"github.com/jfellner/stackgen/cmd/stackgen/handlers"
)

// Publish returns the command that uploads a rendered bundle to the
// artifact bucket.
//
// Environment variables:
//
//	STACKGEN_S3_ACCESS_KEY: object store access key (required)
//	STACKGEN_S3_SECRET_KEY: object store secret key (required)
func Publish() *cobra.Command {
	var opts handlers.PublishOptions

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render a stack and upload the bundle to an artifact bucket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Publish(cmd.Context(), opts)
		},
	}

	addStackFlags(cmd, &opts.File, &opts.Environment, &opts.Sets)
	cmd.Flags().StringVar(&opts.Bucket, "bucket", "", "Artifact bucket name")
	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().StringVar(&opts.Region, "region", "us-east-1", "Bucket region")
	cmd.Flags().StringVar(&opts.Key, "key", "", "Object key (default: manifests/<environment>.yaml)")
	_ = cmd.MarkFlagRequired("bucket")

	return cmd
}
