package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jfellner/stackgen/internal/expand"
	"github.com/jfellner/stackgen/internal/values"
)

// FormatError renders an error for the operator. Validation and expansion
// errors get an itemized list; everything else prints as-is.
func FormatError(err error) string {
	var validation *values.ValidationError
	if errors.As(err, &validation) {
		return formatList("stack validation failed:", validation.Issues)
	}

	var expansion expand.ExpansionErrors
	if errors.As(err, &expansion) {
		items := make([]error, len(expansion))
		for i, e := range expansion {
			items[i] = e
		}
		return formatList("expansion failed for some documents:", items)
	}

	return Error(err.Error())
}

func formatList(header string, items []error) string {
	var b strings.Builder
	b.WriteString(Error(header))
	for _, item := range items {
		b.WriteString("\n  ")
		b.WriteString(Error("[!!]"))
		b.WriteString(" ")
		b.WriteString(item.Error())
	}
	return b.String()
}

// RenderSummary describes a finished render run.
func RenderSummary(environment string, documents int) string {
	env := environment
	if env == "" {
		env = "base"
	}
	return fmt.Sprintf("%s %s", Success("rendered"), Dim(fmt.Sprintf("(%d document(s), environment: %s)", documents, env)))
}
