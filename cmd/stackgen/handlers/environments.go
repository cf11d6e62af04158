package handlers

import (
	"fmt"

	"github.com/jfellner/stackgen/internal/ui"
	"github.com/jfellner/stackgen/internal/values"
)

// listEnvironments can be replaced in tests.
var listEnvironments = values.Environments

// Environments prints the overlay names discovered next to the stack file.
func Environments(file string) error {
	envs, err := listEnvironments(file)
	if err != nil {
		return err
	}

	if len(envs) == 0 {
		fmt.Println(ui.Dim("no environment overlays found"))
		return nil
	}

	for _, env := range envs {
		fmt.Println(env)
	}
	return nil
}
