// Package s3 publishes rendered manifest bundles to an S3-compatible
// object store, where a GitOps reconciler or apply job can pick them up.
package s3
