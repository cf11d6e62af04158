package expand

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/jfellner/stackgen/internal/util/labels"
	"github.com/jfellner/stackgen/internal/util/naming"
	"github.com/jfellner/stackgen/internal/values"
)

// configMap builds the Config document for a service. Only the service's
// own config entries land here; secret-backed entries are injected by the
// orchestrator at pod start and never pass through this ConfigMap.
func configMap(stack *values.Stack, svc *values.ServiceDescriptor) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "ConfigMap",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.ConfigMap(svc.Name),
			Namespace: stack.Namespace,
			Labels:    labels.ForService(svc.Name, stack.Environment),
		},
		Data: svc.Config,
	}
}
