package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/jfellner/stackgen/internal/ui"
	"github.com/jfellner/stackgen/internal/values/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	runWizard    = wizard.Run
	writeStarter = wizard.Write
)

// Init runs the starter wizard and writes the resulting stack file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeStarter(result, outputPath); err != nil {
		return fmt.Errorf("failed to write stack file: %w", err)
	}

	printInitSuccess(outputPath, result)
	return nil
}

func printWelcome() {
	fmt.Println()
	fmt.Println(ui.Title("stackgen - manifest rendering for service stacks"))
	fmt.Println()
	fmt.Println("This wizard creates a starter stack file with one service.")
	fmt.Println("Add more services and environment overlays by hand afterwards.")
	fmt.Println()
}

func printInitSuccess(outputPath string, result *wizard.Result) {
	fmt.Println()
	fmt.Println(ui.Success("Stack file saved!"))
	fmt.Println()
	fmt.Printf("  File:    %s\n", outputPath)
	fmt.Printf("  Service: %s (port %d, %s)\n", result.ServiceName, result.Port, result.Exposure)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  stackgen render -f %s\n", outputPath)
	fmt.Printf("  stackgen apply -f %s\n", outputPath)
	fmt.Println()
}
