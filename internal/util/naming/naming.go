// Package naming derives Kubernetes resource names from service names.
//
// All emitted resources follow fixed patterns so workloads can reference
// their ConfigMap and Service by construction instead of lookup.
package naming

import "fmt"

func ConfigMap(service string) string {
	return fmt.Sprintf("%s-config", service)
}

func Service(service string) string {
	return fmt.Sprintf("%s-service", service)
}

func Deployment(service string) string {
	return service
}
