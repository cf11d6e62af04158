package expand

import (
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/jfellner/stackgen/internal/values"
)

// Kind identifies the resource template that produced a document.
type Kind string

const (
	KindNamespace Kind = "Namespace"
	KindConfig    Kind = "Config"
	KindWorkload  Kind = "Workload"
	KindExposure  Kind = "Exposure"
)

// Document is one expanded resource, ready for serialization.
type Document struct {
	// Service is the descriptor that produced the document; empty for
	// stack-level documents such as the Namespace.
	Service string

	Kind   Kind
	Object runtime.Object
}

// Expand produces the resource documents for every enabled service in
// registry order: Config (when config entries exist), then Workload, then
// Exposure. A failing service/kind pair is recorded and skipped; all other
// documents are still produced, and the collected errors are returned
// together as ExpansionErrors.
func Expand(stack *values.Stack) ([]Document, error) {
	var docs []Document
	var errs ExpansionErrors

	if stack.Namespace != "" {
		docs = append(docs, Document{
			Kind:   KindNamespace,
			Object: namespace(stack),
		})
	}

	for i := range stack.Services {
		svc := &stack.Services[i]
		if !svc.IsEnabled() {
			continue
		}

		if len(svc.Config) > 0 {
			docs = append(docs, Document{
				Service: svc.Name,
				Kind:    KindConfig,
				Object:  configMap(stack, svc),
			})
		}

		workload, err := deployment(stack, svc)
		if err != nil {
			errs = append(errs, &ExpansionError{Service: svc.Name, Kind: KindWorkload, Err: err})
		} else {
			docs = append(docs, Document{Service: svc.Name, Kind: KindWorkload, Object: workload})
		}

		exposure, err := service(stack, svc)
		if err != nil {
			errs = append(errs, &ExpansionError{Service: svc.Name, Kind: KindExposure, Err: err})
		} else {
			docs = append(docs, Document{Service: svc.Name, Kind: KindExposure, Object: exposure})
		}
	}

	if len(errs) > 0 {
		return docs, errs
	}
	return docs, nil
}
