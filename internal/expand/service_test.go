package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"

	"github.com/jfellner/stackgen/internal/values"
)

func TestService_NodeExposed(t *testing.T) {
	t.Parallel()

	stack := inventoryStack()
	stack.Services[0].Expose = values.Exposure{Type: values.ExposureNodeExposed, ExternalPort: 30083}

	svc, err := service(stack, &stack.Services[0])
	require.NoError(t, err)

	assert.Equal(t, corev1.ServiceTypeNodePort, svc.Spec.Type)
	require.Len(t, svc.Spec.Ports, 1)
	assert.Equal(t, int32(30083), svc.Spec.Ports[0].NodePort)
	assert.Equal(t, int32(8083), svc.Spec.Ports[0].Port)
	assert.Equal(t, int32(8083), svc.Spec.Ports[0].TargetPort.IntVal)
}

func TestService_InternalDefaultsToClusterIP(t *testing.T) {
	t.Parallel()

	stack := inventoryStack()
	stack.Services[0].Expose = values.Exposure{}

	svc, err := service(stack, &stack.Services[0])
	require.NoError(t, err)

	assert.Equal(t, corev1.ServiceTypeClusterIP, svc.Spec.Type)
	assert.Zero(t, svc.Spec.Ports[0].NodePort)
}

func TestService_SelectorTargetsAppLabel(t *testing.T) {
	t.Parallel()

	stack := inventoryStack()
	svc, err := service(stack, &stack.Services[0])
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"app": "inventory"}, svc.Spec.Selector)
}
