package wizard

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/jfellner/stackgen/internal/values"
)

// starterTemplate is the commented stack file the wizard writes. It keeps
// the shape an operator will extend by hand, so comments matter here.
const starterTemplate = `# stackgen stack file.
#
# Each entry under services describes one deployable service. Add an
# environment overlay next to this file (stack-dev.yaml, stack-prod.yaml)
# to override values per environment; overlays win on conflicts.
{{- if .Namespace}}
namespace: {{.Namespace}}
{{- end}}

global:
{{- if .ImageRegistry}}
  imageRegistry: {{.ImageRegistry}}
{{- end}}
  imagePullPolicy: IfNotPresent
  resources:
    requests:
      cpu: 100m
      memory: 256Mi
    limits:
      cpu: 500m
      memory: 512Mi

services:
  {{.ServiceName}}:
    enabled: true
    replicas: 1
    image:
      repository: {{.ImageRepository}}
      tag: "{{.ImageTag}}"
    port: {{.Port}}
    # Rendered into the {{.ServiceName}}-config ConfigMap. Keys must not
    # overlap with keys of a referenced secret.
    config: {}
    # secretRef: {{.ServiceName}}-secrets
    expose:
      type: {{.Exposure}}
{{- if .ExternalPort}}
      externalPort: {{.ExternalPort}}
{{- end}}
`

// Render produces the starter stack file contents for the wizard answers.
func Render(result *Result) ([]byte, error) {
	tmpl, err := template.New("starter").Parse(starterTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse starter template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, result); err != nil {
		return nil, fmt.Errorf("failed to render starter stack: %w", err)
	}

	// The generated file must survive a load with validation; catching a
	// template regression here beats catching it on first render.
	if _, err := values.LoadBytes(buf.Bytes(), nil, nil); err != nil {
		return nil, fmt.Errorf("generated stack does not validate: %w", err)
	}

	return buf.Bytes(), nil
}

// Write renders the starter stack file and writes it to path.
func Write(result *Result, path string) error {
	data, err := Render(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write stack file: %w", err)
	}
	return nil
}
