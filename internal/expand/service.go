package expand

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/jfellner/stackgen/internal/util/labels"
	"github.com/jfellner/stackgen/internal/util/naming"
	"github.com/jfellner/stackgen/internal/values"
)

// service builds the Exposure document for a service.
func service(stack *values.Stack, svc *values.ServiceDescriptor) (*corev1.Service, error) {
	exposureType := svc.Expose.EffectiveType()

	port := corev1.ServicePort{
		Name:       "http",
		Port:       int32(svc.Port), //nolint:gosec // validated 1-65535
		TargetPort: intstr.FromInt32(int32(svc.Port)),
		Protocol:   corev1.ProtocolTCP,
	}

	var serviceType corev1.ServiceType
	switch exposureType {
	case values.ExposureInternal:
		serviceType = corev1.ServiceTypeClusterIP
	case values.ExposureNodeExposed:
		serviceType = corev1.ServiceTypeNodePort
		port.NodePort = int32(svc.Expose.ExternalPort) //nolint:gosec // validated 30000-32767
	default:
		// Validation rejects unknown types; this guards descriptors
		// constructed programmatically without a Validate pass.
		return nil, fmt.Errorf("unknown exposure type %q", exposureType)
	}

	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.Service(svc.Name),
			Namespace: stack.Namespace,
			Labels:    labels.ForService(svc.Name, stack.Environment),
		},
		Spec: corev1.ServiceSpec{
			Type:     serviceType,
			Selector: labels.Selector(svc.Name),
			Ports:    []corev1.ServicePort{port},
		},
	}, nil
}
