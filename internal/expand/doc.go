// Package expand turns a validated stack into typed Kubernetes resource
// documents.
//
// For every enabled service, in registry order, it emits a ConfigMap (only
// when the service carries config entries), a Deployment, and a Service.
// The transform is pure and deterministic: identical stacks produce
// identical document lists, which is what makes the emitted stream
// diffable and safe for GitOps reconciliation.
package expand
