package values

import (
	"fmt"
	"math"
)

// Validate checks the merged stack for structural problems. All issues are
// collected and returned together as a single ValidationError so the
// operator sees the full picture in one run.
func (s *Stack) Validate() error {
	var issues []error

	seen := make(map[string]bool)
	externalPorts := make(map[int]string)

	for i := range s.Services {
		d := &s.Services[i]
		if !d.IsEnabled() {
			continue
		}

		if seen[d.Name] {
			issues = append(issues, fmt.Errorf("service %q: duplicate name in registry", d.Name))
		}
		seen[d.Name] = true

		if !isValidDNSName(d.Name) {
			issues = append(issues, fmt.Errorf("service %q: name must be DNS-safe (lowercase alphanumeric and hyphens, must start with a letter)", d.Name))
		}

		issues = append(issues, d.validate(externalPorts)...)
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// validate checks a single enabled descriptor. externalPorts tracks node
// port claims across the registry so collisions surface as errors.
func (d *ServiceDescriptor) validate(externalPorts map[int]string) []error {
	var issues []error

	if d.Image.Repository == "" {
		issues = append(issues, fmt.Errorf("service %q: image.repository is required", d.Name))
	}

	if d.Port == 0 {
		issues = append(issues, fmt.Errorf("service %q: port is required", d.Name))
	} else if d.Port < 1 || d.Port > 65535 {
		issues = append(issues, fmt.Errorf("service %q: port %d is out of range 1-65535", d.Name, d.Port))
	}

	// The upper bound keeps the count representable as the int32 the
	// workload template carries.
	if d.Replicas != nil && *d.Replicas < 1 {
		issues = append(issues, fmt.Errorf("service %q: replicas must be >= 1; set enabled: false to turn the service off", d.Name))
	} else if d.Replicas != nil && *d.Replicas > math.MaxInt32 {
		issues = append(issues, fmt.Errorf("service %q: replicas %d exceeds the maximum of %d", d.Name, *d.Replicas, math.MaxInt32))
	}

	if d.ImagePullPolicy != "" && !ValidPullPolicies[d.ImagePullPolicy] {
		issues = append(issues, fmt.Errorf("service %q: invalid imagePullPolicy %q", d.Name, d.ImagePullPolicy))
	}

	issues = append(issues, d.validateExposure(externalPorts)...)

	return issues
}

func (d *ServiceDescriptor) validateExposure(externalPorts map[int]string) []error {
	var issues []error

	exposureType := d.Expose.EffectiveType()
	if !exposureType.IsValid() {
		issues = append(issues, fmt.Errorf("service %q: expose.type must be one of %v", d.Name, ValidExposureTypes()))
		return issues
	}

	switch exposureType {
	case ExposureInternal:
		if d.Expose.ExternalPort != 0 {
			issues = append(issues, fmt.Errorf("service %q: expose.externalPort is only valid with type NodeExposed", d.Name))
		}
	case ExposureNodeExposed:
		port := d.Expose.ExternalPort
		if port == 0 {
			issues = append(issues, fmt.Errorf("service %q: expose.externalPort is required with type NodeExposed", d.Name))
			break
		}
		if port < MinExternalPort || port > MaxExternalPort {
			issues = append(issues, fmt.Errorf("service %q: expose.externalPort %d is out of range %d-%d", d.Name, port, MinExternalPort, MaxExternalPort))
			break
		}
		if other, claimed := externalPorts[port]; claimed {
			issues = append(issues, fmt.Errorf("service %q: expose.externalPort %d already claimed by service %q", d.Name, port, other))
		} else {
			externalPorts[port] = d.Name
		}
	}

	return issues
}

// isValidDNSName reports whether name is a lowercase DNS label that starts
// with a letter: alphanumeric with hyphens, at most 63 characters. Stricter
// than DNS-1123, which would also allow a leading digit.
func isValidDNSName(name string) bool {
	if len(name) == 0 || len(name) > 63 {
		return false
	}
	if name[0] < 'a' || name[0] > 'z' {
		return false
	}
	last := name[len(name)-1]
	if (last < 'a' || last > 'z') && (last < '0' || last > '9') {
		return false
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	return true
}
