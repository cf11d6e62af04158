package values

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const baseStack = `
namespace: retail
global:
  imageRegistry: ghcr.io/acme
  imagePullPolicy: IfNotPresent
  resources:
    requests:
      cpu: 100m
      memory: 256Mi
    limits:
      cpu: 500m
      memory: 512Mi
services:
  inventory:
    enabled: true
    replicas: 2
    image:
      repository: inventory-service
      tag: 1.0.0
    port: 8083
    config:
      DB_HOST: postgres-service
    secretRef: inventory-secrets
    expose:
      type: Internal
  product:
    image:
      repository: product-service
      tag: 1.0.0
    port: 8084
  gateway:
    image:
      repository: api-gateway
      tag: 1.0.0
    port: 8080
    expose:
      type: NodeExposed
      externalPort: 30080
`

func writeStackFiles(t *testing.T, base string, overlays map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "stack.yaml")
	if err := os.WriteFile(path, []byte(base), 0o644); err != nil {
		t.Fatalf("failed to write stack file: %v", err)
	}
	for env, content := range overlays {
		if err := os.WriteFile(OverlayPath(path, env), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write overlay: %v", err)
		}
	}
	return path
}

func TestLoad_ValidStack(t *testing.T) {
	t.Parallel()

	path := writeStackFiles(t, baseStack, nil)

	stack, err := Load(path, "", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if stack.Namespace != "retail" {
		t.Errorf("Namespace = %q, want %q", stack.Namespace, "retail")
	}
	if stack.Global.ImageRegistry != "ghcr.io/acme" {
		t.Errorf("ImageRegistry = %q, want %q", stack.Global.ImageRegistry, "ghcr.io/acme")
	}
	if len(stack.Services) != 3 {
		t.Fatalf("len(Services) = %d, want 3", len(stack.Services))
	}

	inv := stack.Services[0]
	if inv.Name != "inventory" {
		t.Errorf("Services[0].Name = %q, want %q", inv.Name, "inventory")
	}
	if inv.ReplicaCount() != 2 {
		t.Errorf("ReplicaCount() = %d, want 2", inv.ReplicaCount())
	}
	if inv.Config["DB_HOST"] != "postgres-service" {
		t.Errorf("Config[DB_HOST] = %q, want %q", inv.Config["DB_HOST"], "postgres-service")
	}

	if got := stack.Services[2].Expose.ExternalPort; got != 30080 {
		t.Errorf("gateway externalPort = %d, want 30080", got)
	}
}

func TestLoad_ServiceOrderFollowsDocument(t *testing.T) {
	t.Parallel()

	path := writeStackFiles(t, baseStack, nil)

	stack, err := Load(path, "", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"inventory", "product", "gateway"}
	for i, name := range want {
		if stack.Services[i].Name != name {
			t.Errorf("Services[%d].Name = %q, want %q", i, stack.Services[i].Name, name)
		}
	}
}

func TestLoad_EnvironmentOverlay(t *testing.T) {
	t.Parallel()

	overlay := `
global:
  imageRegistry: registry.prod.acme.io
services:
  inventory:
    replicas: 5
`
	path := writeStackFiles(t, baseStack, map[string]string{"prod": overlay})

	stack, err := Load(path, "prod", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if stack.Environment != "prod" {
		t.Errorf("Environment = %q, want %q", stack.Environment, "prod")
	}
	if stack.Global.ImageRegistry != "registry.prod.acme.io" {
		t.Errorf("ImageRegistry = %q, want overlay value", stack.Global.ImageRegistry)
	}
	if got := stack.Services[0].ReplicaCount(); got != 5 {
		t.Errorf("inventory replicas = %d, want 5 (overlay wins)", got)
	}
	// Untouched values survive the merge.
	if got := stack.Services[0].Port; got != 8083 {
		t.Errorf("inventory port = %d, want 8083", got)
	}
	if stack.Services[0].Name != "inventory" {
		t.Errorf("service order changed by overlay")
	}
}

func TestLoad_ContentlessOverlayIsNoOp(t *testing.T) {
	t.Parallel()

	// An overlay that parses to nothing must leave the base stack intact.
	overlays := map[string]string{
		"empty":    "",
		"comments": "# reserved for future overrides\n",
		"null":     "---\n",
	}
	path := writeStackFiles(t, baseStack, overlays)

	for env := range overlays {
		stack, err := Load(path, env, nil)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", env, err)
		}
		if len(stack.Services) != 3 {
			t.Errorf("Load(%q): len(Services) = %d, want 3 (base must survive)", env, len(stack.Services))
		}
		if stack.Namespace != "retail" {
			t.Errorf("Load(%q): Namespace = %q, want %q", env, stack.Namespace, "retail")
		}
	}
}

func TestLoad_UnknownEnvironment(t *testing.T) {
	t.Parallel()

	path := writeStackFiles(t, baseStack, map[string]string{"dev": "{}"})

	_, err := Load(path, "staging", nil)

	var unknown *UnknownEnvironmentError
	if !errors.As(err, &unknown) {
		t.Fatalf("Load() error = %v, want UnknownEnvironmentError", err)
	}
	if unknown.Name != "staging" {
		t.Errorf("Name = %q, want %q", unknown.Name, "staging")
	}
	if len(unknown.Known) != 1 || unknown.Known[0] != "dev" {
		t.Errorf("Known = %v, want [dev]", unknown.Known)
	}
}

func TestLoad_SetOverrides(t *testing.T) {
	t.Parallel()

	path := writeStackFiles(t, baseStack, nil)

	stack, err := Load(path, "", []string{"services.inventory.replicas=7"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := stack.Services[0].ReplicaCount(); got != 7 {
		t.Errorf("inventory replicas = %d, want 7 (--set wins)", got)
	}
}

func TestLoadBytes_MergePrecedence(t *testing.T) {
	t.Parallel()

	base := []byte(`
services:
  web:
    image: {repository: web, tag: "1.0"}
    port: 8080
    config:
      MODE: base
      KEEP: base
`)
	overlay := []byte(`
services:
  web:
    config:
      MODE: prod
`)

	stack, err := LoadBytes(base, overlay, nil)
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	cfg := stack.Services[0].Config
	if cfg["MODE"] != "prod" {
		t.Errorf("MODE = %q, want overlay value", cfg["MODE"])
	}
	if cfg["KEEP"] != "base" {
		t.Errorf("KEEP = %q, want base value", cfg["KEEP"])
	}
}

func TestLoadBytes_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stack   string
		wantMsg string
	}{
		{
			name: "duplicate enabled names",
			stack: `
services:
  web:
    image: {repository: web, tag: "1.0"}
    port: 8080
  web:
    image: {repository: web2, tag: "1.0"}
    port: 8081
`,
			wantMsg: "duplicate name",
		},
		{
			name: "missing image repository",
			stack: `
services:
  web:
    image: {tag: "1.0"}
    port: 8080
`,
			wantMsg: "image.repository is required",
		},
		{
			name: "missing port",
			stack: `
services:
  web:
    image: {repository: web, tag: "1.0"}
`,
			wantMsg: "port is required",
		},
		{
			name: "node exposed without external port",
			stack: `
services:
  web:
    image: {repository: web, tag: "1.0"}
    port: 8080
    expose:
      type: NodeExposed
`,
			wantMsg: "externalPort is required",
		},
		{
			name: "internal with external port",
			stack: `
services:
  web:
    image: {repository: web, tag: "1.0"}
    port: 8080
    expose:
      type: Internal
      externalPort: 30080
`,
			wantMsg: "only valid with type NodeExposed",
		},
		{
			name: "external port collision",
			stack: `
services:
  web:
    image: {repository: web, tag: "1.0"}
    port: 8080
    expose: {type: NodeExposed, externalPort: 30080}
  api:
    image: {repository: api, tag: "1.0"}
    port: 8081
    expose: {type: NodeExposed, externalPort: 30080}
`,
			wantMsg: "already claimed",
		},
		{
			name: "external port out of node port range",
			stack: `
services:
  web:
    image: {repository: web, tag: "1.0"}
    port: 8080
    expose: {type: NodeExposed, externalPort: 8080}
`,
			wantMsg: "out of range",
		},
		{
			name: "zero replicas on enabled service",
			stack: `
services:
  web:
    replicas: 0
    image: {repository: web, tag: "1.0"}
    port: 8080
`,
			wantMsg: "replicas must be >= 1",
		},
		{
			name: "replicas beyond int32 range",
			stack: `
services:
  web:
    replicas: 5000000000
    image: {repository: web, tag: "1.0"}
    port: 8080
`,
			wantMsg: "exceeds the maximum",
		},
		{
			name: "invalid pull policy",
			stack: `
services:
  web:
    image: {repository: web, tag: "1.0"}
    port: 8080
    imagePullPolicy: Sometimes
`,
			wantMsg: "invalid imagePullPolicy",
		},
		{
			name: "invalid exposure type",
			stack: `
services:
  web:
    image: {repository: web, tag: "1.0"}
    port: 8080
    expose: {type: LoadBalanced}
`,
			wantMsg: "expose.type must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadBytes([]byte(tt.stack), nil, nil)

			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("LoadBytes() error = %v, want ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadBytes_DisabledServiceSkipsValidation(t *testing.T) {
	t.Parallel()

	// A disabled descriptor may be incomplete; it is skipped entirely.
	stack := []byte(`
services:
  wip:
    enabled: false
  web:
    image: {repository: web, tag: "1.0"}
    port: 8080
`)

	got, err := LoadBytes(stack, nil, nil)
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if len(got.Services) != 2 {
		t.Errorf("len(Services) = %d, want 2 (disabled kept in registry)", len(got.Services))
	}
}

func TestLoadBytes_CollectsAllIssues(t *testing.T) {
	t.Parallel()

	stack := []byte(`
services:
  web:
    image: {tag: "1.0"}
  api:
    replicas: 0
    image: {repository: api, tag: "1.0"}
    port: 8081
`)

	_, err := LoadBytes(stack, nil, nil)

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("LoadBytes() error = %v, want ValidationError", err)
	}
	if len(validation.Issues) < 3 {
		t.Errorf("len(Issues) = %d, want all issues collected in one pass", len(validation.Issues))
	}
}

func TestLoadBytes_EmptyStack(t *testing.T) {
	t.Parallel()

	if _, err := LoadBytes([]byte(""), nil, nil); err == nil {
		t.Error("LoadBytes() on empty input should fail")
	}
}
