package values

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"helm.sh/helm/v3/pkg/strvals"
)

// Load reads the stack file, merges the environment overlay (when env is
// non-empty) and any --set overrides onto it, decodes the result into typed
// descriptors and validates them.
func Load(path, env string, sets []string) (*Stack, error) {
	base, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stack file: %w", err)
	}

	var overlay []byte
	if env != "" {
		overlay, err = ResolveEnvironment(path, env)
		if err != nil {
			return nil, err
		}
	}

	stack, err := LoadBytes(base, overlay, sets)
	if err != nil {
		return nil, err
	}
	stack.Environment = env
	return stack, nil
}

// LoadBytes is the pure core of Load: it merges overlay and overrides onto
// the base document and returns the validated stack. overlay may be nil.
func LoadBytes(base, overlay []byte, sets []string) (*Stack, error) {
	node, err := parseNode(base)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("stack file is empty")
	}

	if overlay != nil {
		overlayNode, err := parseNode(overlay)
		if err != nil {
			return nil, fmt.Errorf("invalid overlay: %w", err)
		}
		node = MergeNodes(node, overlayNode)
	}

	for _, set := range sets {
		tree, err := strvals.Parse(set)
		if err != nil {
			return nil, fmt.Errorf("invalid --set value %q: %w", set, err)
		}
		setNode, err := encodeNode(tree)
		if err != nil {
			return nil, err
		}
		node = MergeNodes(node, setNode)
	}

	stack, err := decodeStack(node)
	if err != nil {
		return nil, err
	}

	if err := stack.Validate(); err != nil {
		return nil, err
	}
	return stack, nil
}

// stackDoc mirrors the top level of a stack file, keeping the services
// block as a raw node so key order survives decoding.
type stackDoc struct {
	Namespace string         `yaml:"namespace"`
	Global    GlobalDefaults `yaml:"global"`
	Services  yaml.Node      `yaml:"services"`
}

// decodeStack decodes the merged document into a Stack, preserving the
// document order of the services mapping. Duplicate service keys are kept
// as separate descriptors so validation can reject them explicitly instead
// of one silently overwriting the other.
func decodeStack(node *yaml.Node) (*Stack, error) {
	var doc stackDoc
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode stack: %w", err)
	}

	stack := &Stack{
		Namespace: doc.Namespace,
		Global:    doc.Global,
	}

	if doc.Services.Kind == 0 || doc.Services.Tag == "!!null" {
		return stack, nil
	}
	if doc.Services.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("services must be a mapping of name to descriptor")
	}

	for i := 0; i+1 < len(doc.Services.Content); i += 2 {
		key := doc.Services.Content[i]
		value := doc.Services.Content[i+1]

		var d ServiceDescriptor
		if err := value.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode service %q: %w", key.Value, err)
		}
		d.Name = key.Value
		stack.Services = append(stack.Services, d)
	}

	return stack, nil
}
