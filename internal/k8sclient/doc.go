// Package k8sclient applies emitted manifest streams to a cluster and
// answers the preflight questions the expansion core delegates to the
// cluster (for example whether a referenced Secret exists).
package k8sclient
