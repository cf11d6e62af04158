package expand

import (
	"fmt"
	"strings"
)

// ExpansionError reports that one service could not produce one document
// kind. It never aborts expansion of other service/kind combinations.
type ExpansionError struct {
	Service string
	Kind    Kind
	Err     error
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("service %q: cannot expand %s document: %v", e.Service, e.Kind, e.Err)
}

func (e *ExpansionError) Unwrap() error {
	return e.Err
}

// ExpansionErrors aggregates all kind-scoped errors collected during a run.
type ExpansionErrors []*ExpansionError

func (e ExpansionErrors) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "expansion failed for %d document(s):", len(e))
	for _, err := range e {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual errors to errors.Is/As.
func (e ExpansionErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}
