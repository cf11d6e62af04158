package expand

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/jfellner/stackgen/internal/util/labels"
	"github.com/jfellner/stackgen/internal/values"
)

// namespace builds the Namespace document emitted ahead of all service
// documents when the stack declares a target namespace.
func namespace(stack *values.Stack) *corev1.Namespace {
	meta := map[string]string{
		labels.KeyManagedBy: labels.ManagedBy,
	}
	if stack.Environment != "" {
		meta[labels.KeyEnvironment] = stack.Environment
	}

	return &corev1.Namespace{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Namespace",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:   stack.Namespace,
			Labels: meta,
		},
	}
}
