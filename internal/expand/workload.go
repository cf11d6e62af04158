package expand

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/jfellner/stackgen/internal/util/labels"
	"github.com/jfellner/stackgen/internal/util/naming"
	"github.com/jfellner/stackgen/internal/values"
)

// Health probe wiring. Liveness gets a longer initial delay than readiness
// so a slow-starting process is not killed before it finishes initializing,
// while readiness gates traffic sooner and checks more frequently.
const (
	livenessPath  = "/actuator/health/liveness"
	readinessPath = "/actuator/health/readiness"

	livenessInitialDelaySeconds  = 30
	livenessPeriodSeconds        = 20
	readinessInitialDelaySeconds = 10
	readinessPeriodSeconds       = 5
)

// deployment builds the Workload document for a service.
func deployment(stack *values.Stack, svc *values.ServiceDescriptor) (*appsv1.Deployment, error) {
	if svc.Image.Tag == "" {
		return nil, fmt.Errorf("image.tag is required")
	}

	resources, err := resourceRequirements(svc.EffectiveResources(&stack.Global))
	if err != nil {
		return nil, err
	}

	var envFrom []corev1.EnvFromSource
	if len(svc.Config) > 0 {
		envFrom = append(envFrom, corev1.EnvFromSource{
			ConfigMapRef: &corev1.ConfigMapEnvSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: naming.ConfigMap(svc.Name)},
			},
		})
	}
	if svc.SecretRef != "" {
		envFrom = append(envFrom, corev1.EnvFromSource{
			SecretRef: &corev1.SecretEnvSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: svc.SecretRef},
			},
		})
	}

	replicas := int32(svc.ReplicaCount()) //nolint:gosec // validated 1..math.MaxInt32

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.Deployment(svc.Name),
			Namespace: stack.Namespace,
			Labels:    labels.ForService(svc.Name, stack.Environment),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: labels.Selector(svc.Name),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labels.ForService(svc.Name, stack.Environment),
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:            svc.Name,
							Image:           svc.Image.Resolve(&stack.Global),
							ImagePullPolicy: corev1.PullPolicy(svc.EffectivePullPolicy(&stack.Global)),
							Ports: []corev1.ContainerPort{
								{
									Name:          "http",
									ContainerPort: int32(svc.Port), //nolint:gosec // validated 1-65535
									Protocol:      corev1.ProtocolTCP,
								},
							},
							EnvFrom:        envFrom,
							Resources:      resources,
							LivenessProbe:  probe(svc.Port, livenessPath, livenessInitialDelaySeconds, livenessPeriodSeconds),
							ReadinessProbe: probe(svc.Port, readinessPath, readinessInitialDelaySeconds, readinessPeriodSeconds),
						},
					},
				},
			},
		},
	}, nil
}

// probe builds an HTTP health probe against the service port.
func probe(port int, path string, initialDelay, period int32) *corev1.Probe {
	return &corev1.Probe{
		ProbeHandler: corev1.ProbeHandler{
			HTTPGet: &corev1.HTTPGetAction{
				Path: path,
				Port: intstr.FromInt32(int32(port)), //nolint:gosec // validated 1-65535
			},
		},
		InitialDelaySeconds: initialDelay,
		PeriodSeconds:       period,
	}
}

// resourceRequirements converts quantity strings into a typed requirements
// block, leaving out anything that is not set.
func resourceRequirements(r values.Resources) (corev1.ResourceRequirements, error) {
	var out corev1.ResourceRequirements

	requests, err := resourceList(r.Requests)
	if err != nil {
		return out, fmt.Errorf("invalid resource requests: %w", err)
	}
	limits, err := resourceList(r.Limits)
	if err != nil {
		return out, fmt.Errorf("invalid resource limits: %w", err)
	}

	out.Requests = requests
	out.Limits = limits
	return out, nil
}

func resourceList(r values.ResourceList) (corev1.ResourceList, error) {
	if r == (values.ResourceList{}) {
		return nil, nil
	}

	out := corev1.ResourceList{}
	if r.CPU != "" {
		q, err := resource.ParseQuantity(r.CPU)
		if err != nil {
			return nil, fmt.Errorf("cpu %q: %w", r.CPU, err)
		}
		out[corev1.ResourceCPU] = q
	}
	if r.Memory != "" {
		q, err := resource.ParseQuantity(r.Memory)
		if err != nil {
			return nil, fmt.Errorf("memory %q: %w", r.Memory, err)
		}
		out[corev1.ResourceMemory] = q
	}
	return out, nil
}
