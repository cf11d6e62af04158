package values

import (
	"fmt"
	"strings"
)

// ValidationError reports structural problems in the merged value tree.
// It is fatal to the whole run; nothing is expanded when it is returned.
type ValidationError struct {
	Issues []error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid stack configuration (%d issue(s)):", len(e.Issues))
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue.Error())
	}
	return b.String()
}

// Unwrap exposes the individual issues to errors.Is/As.
func (e *ValidationError) Unwrap() []error {
	return e.Issues
}

// UnknownEnvironmentError is returned when a requested overlay does not exist.
type UnknownEnvironmentError struct {
	Name  string
	Known []string
}

func (e *UnknownEnvironmentError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown environment %q: no overlay files found", e.Name)
	}
	return fmt.Sprintf("unknown environment %q: known environments are %s", e.Name, strings.Join(e.Known, ", "))
}
