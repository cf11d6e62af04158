// Package emit serializes expanded documents into a multi-document YAML
// stream.
//
// Emission order equals expansion order. That matters: orchestrators that
// apply a stream front to back must see a service's ConfigMap before the
// Deployment that references it. Serialization goes through sigs.k8s.io/yaml,
// which sorts object keys, so identical document lists always produce
// byte-identical streams.
package emit

import (
	"bytes"
	"fmt"
	"io"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/jfellner/stackgen/internal/expand"
)

// separator is the conventional YAML multi-document delimiter.
const separator = "---\n"

// Write serializes the documents to w in order.
func Write(w io.Writer, docs []expand.Document) error {
	for i, doc := range docs {
		if i > 0 {
			if _, err := io.WriteString(w, separator); err != nil {
				return fmt.Errorf("failed to write document separator: %w", err)
			}
		}

		out, err := sigsyaml.Marshal(doc.Object)
		if err != nil {
			return fmt.Errorf("failed to marshal %s document for %q: %w", doc.Kind, doc.Service, err)
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("failed to write %s document for %q: %w", doc.Kind, doc.Service, err)
		}
	}
	return nil
}

// Bytes serializes the documents into a single byte stream.
func Bytes(docs []expand.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, docs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
