package values

import (
	"fmt"
	"strings"
)

// Stack is the fully merged configuration for one expansion run.
// It is read-only once loaded; a new Stack is built for every run.
type Stack struct {
	// Namespace is the target namespace for all emitted objects.
	// When set, a Namespace document is emitted ahead of everything else.
	Namespace string

	// Environment is the overlay name this stack was resolved for,
	// or empty when only the base file was loaded.
	Environment string

	// Global holds defaults applied to every service unless overridden.
	Global GlobalDefaults

	// Services are the service descriptors in document order.
	Services []ServiceDescriptor
}

// GlobalDefaults applies to all descriptors unless a descriptor overrides it.
type GlobalDefaults struct {
	// ImageRegistry is prepended to image repositories that do not
	// carry their own registry (e.g. "ghcr.io/acme").
	ImageRegistry string `yaml:"imageRegistry"`

	// ImagePullPolicy is the default pull policy (Always, IfNotPresent, Never).
	ImagePullPolicy string `yaml:"imagePullPolicy"`

	// Resources are the default resource requests and limits.
	Resources Resources `yaml:"resources"`
}

// Resources holds container resource requests and limits as Kubernetes
// quantity strings ("100m", "256Mi").
type Resources struct {
	Requests ResourceList `yaml:"requests"`
	Limits   ResourceList `yaml:"limits"`
}

// ResourceList is one side of a requests/limits pair.
type ResourceList struct {
	CPU    string `yaml:"cpu"`
	Memory string `yaml:"memory"`
}

// IsZero reports whether no quantity is set on either side.
func (r Resources) IsZero() bool {
	return r.Requests == (ResourceList{}) && r.Limits == (ResourceList{})
}

// ServiceDescriptor describes one deployable service's desired shape.
type ServiceDescriptor struct {
	// Name is the unique registry key, taken from the mapping key in the
	// stack file. It is also the base for derived resource names.
	Name string `yaml:"-"`

	// Enabled toggles the service. Omitted means enabled.
	Enabled *bool `yaml:"enabled"`

	// Replicas is the desired replica count. Omitted means 1.
	// Zero is rejected; disable the service instead.
	Replicas *int `yaml:"replicas"`

	// Image is the container image reference.
	Image ImageRef `yaml:"image"`

	// Port is the container and service port.
	Port int `yaml:"port"`

	// Config holds environment configuration rendered into a ConfigMap.
	// Keys must not overlap with keys of the referenced secret.
	Config map[string]string `yaml:"config"`

	// SecretRef names a separately managed Secret whose entries are
	// injected alongside Config. Secret material never enters the stack.
	SecretRef string `yaml:"secretRef"`

	// Expose declares the service's reachability.
	Expose Exposure `yaml:"expose"`

	// ImagePullPolicy overrides the global default when set.
	ImagePullPolicy string `yaml:"imagePullPolicy"`

	// Resources overrides the global defaults when set.
	Resources *Resources `yaml:"resources"`
}

// IsEnabled reports whether the service takes part in expansion.
func (d *ServiceDescriptor) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// ReplicaCount returns the effective replica count, defaulting to 1.
func (d *ServiceDescriptor) ReplicaCount() int {
	if d.Replicas == nil {
		return 1
	}
	return *d.Replicas
}

// EffectivePullPolicy returns the descriptor's pull policy, falling back to
// the global default and then to IfNotPresent.
func (d *ServiceDescriptor) EffectivePullPolicy(global *GlobalDefaults) string {
	if d.ImagePullPolicy != "" {
		return d.ImagePullPolicy
	}
	if global.ImagePullPolicy != "" {
		return global.ImagePullPolicy
	}
	return "IfNotPresent"
}

// EffectiveResources returns the descriptor's resource overrides, falling
// back to the global defaults.
func (d *ServiceDescriptor) EffectiveResources(global *GlobalDefaults) Resources {
	if d.Resources != nil {
		return *d.Resources
	}
	return global.Resources
}

// ImageRef identifies a container image.
type ImageRef struct {
	// Registry overrides the global image registry when set.
	Registry string `yaml:"registry"`

	Repository string `yaml:"repository"`
	Tag        string `yaml:"tag"`
}

// Resolve returns the full image reference, using the registry from the
// descriptor when set and falling back to the global default otherwise.
func (i ImageRef) Resolve(global *GlobalDefaults) string {
	registry := i.Registry
	if registry == "" {
		registry = global.ImageRegistry
	}
	if registry == "" {
		return fmt.Sprintf("%s:%s", i.Repository, i.Tag)
	}
	return fmt.Sprintf("%s/%s:%s", strings.TrimSuffix(registry, "/"), i.Repository, i.Tag)
}

// Exposure declares how a service is reachable.
type Exposure struct {
	// Type is the exposure kind. Omitted means Internal.
	Type ExposureType `yaml:"type"`

	// ExternalPort is the node port claimed by a NodeExposed service.
	// Must be unset for Internal services.
	ExternalPort int `yaml:"externalPort"`
}

// EffectiveType returns the exposure type, defaulting to Internal.
func (e Exposure) EffectiveType() ExposureType {
	if e.Type == "" {
		return ExposureInternal
	}
	return e.Type
}

// ExposureType is the declared reachability of a service.
type ExposureType string

const (
	// ExposureInternal makes the service reachable inside the cluster only.
	ExposureInternal ExposureType = "Internal"

	// ExposureNodeExposed publishes the service on a node port.
	ExposureNodeExposed ExposureType = "NodeExposed"
)

// ValidExposureTypes returns all valid exposure types.
func ValidExposureTypes() []ExposureType {
	return []ExposureType{ExposureInternal, ExposureNodeExposed}
}

// IsValid returns true if the exposure type is known.
func (t ExposureType) IsValid() bool {
	switch t {
	case ExposureInternal, ExposureNodeExposed:
		return true
	default:
		return false
	}
}

// ValidPullPolicies lists the accepted image pull policies.
var ValidPullPolicies = map[string]bool{
	"Always":       true,
	"IfNotPresent": true,
	"Never":        true,
}

// NodePort service range enforced for externalPort.
const (
	MinExternalPort = 30000
	MaxExternalPort = 32767
)
