// Package labels provides consistent labeling for emitted Kubernetes objects.
//
// Standard label keys use the stackgen.dev prefix for namespacing, alongside
// the app.kubernetes.io recommended labels. Selector labels are kept to the
// bare "app" key so replacing label sets never orphans existing pods.
package labels

// Standard label keys.
const (
	KeyApp         = "app"
	KeyName        = "app.kubernetes.io/name"
	KeyManagedBy   = "app.kubernetes.io/managed-by"
	KeyEnvironment = "stackgen.dev/environment"
)

// ManagedBy is the value stamped on every emitted object.
const ManagedBy = "stackgen"

// ForService returns the full label set for a service's objects.
// The environment label is omitted when no overlay was applied.
func ForService(service, environment string) map[string]string {
	l := map[string]string{
		KeyApp:       service,
		KeyName:      service,
		KeyManagedBy: ManagedBy,
	}
	if environment != "" {
		l[KeyEnvironment] = environment
	}
	return l
}

// Selector returns the label set used to match a service's pods.
func Selector(service string) map[string]string {
	return map[string]string{KeyApp: service}
}
