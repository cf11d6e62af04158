package handlers

import (
	"fmt"

	"github.com/jfellner/stackgen/internal/ui"
)

// Validate loads the stack through the full merge and validation path and
// reports what a render would produce, without emitting anything.
func Validate(opts RenderOptions) error {
	stack, err := loadStack(opts.File, opts.Environment, opts.Sets)
	if err != nil {
		return err
	}

	enabled := 0
	for i := range stack.Services {
		if stack.Services[i].IsEnabled() {
			enabled++
		}
	}

	env := stack.Environment
	if env == "" {
		env = "base"
	}

	fmt.Printf("%s %s\n", ui.Success("stack is valid"),
		ui.Dim(fmt.Sprintf("(%d service(s) enabled of %d, environment: %s)", enabled, len(stack.Services), env)))
	return nil
}
