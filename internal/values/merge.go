package values

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MergeNodes merges overlay onto base and returns the result.
//
// Mapping nodes merge key-by-key: keys present in both sides recurse, keys
// only in base keep their value, keys only in overlay are appended in
// overlay order. Every other node kind (scalars, sequences) is replaced
// wholesale by the overlay. Base key order is preserved, which keeps
// service registry order stable across environments.
func MergeNodes(base, overlay *yaml.Node) *yaml.Node {
	base = unwrapDocument(base)
	overlay = unwrapDocument(overlay)

	// An absent or null side contributes nothing to the merge. This is what
	// keeps an empty overlay file a no-op instead of wiping the base tree.
	if base == nil || isNullNode(base) {
		return overlay
	}
	if overlay == nil || isNullNode(overlay) {
		return base
	}
	if base.Kind != yaml.MappingNode || overlay.Kind != yaml.MappingNode {
		return overlay
	}

	merged := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  base.Tag,
	}

	for i := 0; i+1 < len(base.Content); i += 2 {
		key := base.Content[i]
		value := base.Content[i+1]

		if overlayValue := mappingValue(overlay, key.Value); overlayValue != nil {
			value = MergeNodes(value, overlayValue)
		}
		merged.Content = append(merged.Content, key, value)
	}

	for i := 0; i+1 < len(overlay.Content); i += 2 {
		key := overlay.Content[i]
		if mappingValue(base, key.Value) == nil {
			merged.Content = append(merged.Content, key, overlay.Content[i+1])
		}
	}

	return merged
}

// unwrapDocument returns the root content node of a document node.
func unwrapDocument(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		return n.Content[0]
	}
	return n
}

// mappingValue returns the value node for a key in a mapping node, or nil.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// isNullNode reports whether a node carries no content: never unmarshaled
// (empty or comment-only input) or an explicit YAML null.
func isNullNode(n *yaml.Node) bool {
	return n.Kind == 0 || n.Tag == "!!null"
}

// parseNode parses YAML bytes into the document's root node. Documents
// without content (empty, comment-only, a bare null) parse to nil.
func parseNode(data []byte) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	root := unwrapDocument(&node)
	if root == nil || isNullNode(root) {
		return nil, nil
	}
	return root, nil
}

// encodeNode converts an arbitrary value (e.g. a strvals override tree)
// into a node so it can participate in a merge. yaml.v3 encodes map keys
// in sorted order, so the result is deterministic.
func encodeNode(v any) (*yaml.Node, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode override values: %w", err)
	}
	return &node, nil
}
