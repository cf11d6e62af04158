package wizard

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/jfellner/stackgen/internal/values"
)

// serviceNameRegex validates service names: DNS-safe labels starting with a letter.
var serviceNameRegex = regexp.MustCompile(`^[a-z](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

// Result holds the wizard answers.
type Result struct {
	Namespace     string
	ImageRegistry string

	ServiceName     string
	ImageRepository string
	ImageTag        string
	Port            int
	Exposure        values.ExposureType
	ExternalPort    int
}

// Run walks the operator through the starter questions.
func Run(ctx context.Context) (*Result, error) {
	result := &Result{
		ImageTag: "latest",
		Exposure: values.ExposureInternal,
	}

	if err := runStackGroup(ctx, result); err != nil {
		return nil, err
	}
	if err := runServiceGroup(ctx, result); err != nil {
		return nil, err
	}
	if err := runExposureGroup(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// runStackGroup prompts for stack-level settings.
func runStackGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Namespace").
				Description("Target namespace for all services (leave empty for the cluster default)").
				Placeholder("my-app").
				Value(&result.Namespace).
				Validate(validateOptionalName),
			huh.NewInput().
				Title("Image Registry").
				Description("Prepended to image repositories, e.g. ghcr.io/acme (optional)").
				Placeholder("ghcr.io/acme").
				Value(&result.ImageRegistry),
		).Title("Stack"),
	).RunWithContext(ctx)
}

// runServiceGroup prompts for the first service.
func runServiceGroup(ctx context.Context, result *Result) error {
	var portInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Service Name").
				Description("DNS-safe name, also used for derived resource names").
				Placeholder("inventory").
				Value(&result.ServiceName).
				Validate(validateServiceName),
			huh.NewInput().
				Title("Image Repository").
				Placeholder("inventory-service").
				Value(&result.ImageRepository).
				Validate(validateRequired("image repository")),
			huh.NewInput().
				Title("Image Tag").
				Value(&result.ImageTag).
				Validate(validateRequired("image tag")),
			huh.NewInput().
				Title("Port").
				Description("Container and service port").
				Placeholder("8080").
				Value(&portInput).
				Validate(validatePort(1, 65535)),
		).Title("First Service"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.Port, _ = strconv.Atoi(portInput)
	return nil
}

// runExposureGroup prompts for reachability.
func runExposureGroup(ctx context.Context, result *Result) error {
	exposure := string(values.ExposureInternal)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Exposure").
				Description("Internal services are only reachable inside the cluster").
				Options(
					huh.NewOption("Internal (ClusterIP)", string(values.ExposureInternal)),
					huh.NewOption("NodeExposed (NodePort)", string(values.ExposureNodeExposed)),
				).
				Value(&exposure),
		).Title("Reachability"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.Exposure = values.ExposureType(exposure)
	if result.Exposure != values.ExposureNodeExposed {
		return nil
	}

	var portInput string
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("External Port").
				Description(fmt.Sprintf("Node port in the %d-%d range", values.MinExternalPort, values.MaxExternalPort)).
				Placeholder("30080").
				Value(&portInput).
				Validate(validatePort(values.MinExternalPort, values.MaxExternalPort)),
		).Title("External Port"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.ExternalPort, _ = strconv.Atoi(portInput)
	return nil
}

func validateServiceName(s string) error {
	if !serviceNameRegex.MatchString(s) {
		return fmt.Errorf("must be a DNS-safe name starting with a letter")
	}
	return nil
}

func validateOptionalName(s string) error {
	if s == "" {
		return nil
	}
	return validateServiceName(s)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validatePort(minPort, maxPort int) func(string) error {
	return func(s string) error {
		port, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if port < minPort || port > maxPort {
			return fmt.Errorf("must be in the %d-%d range", minPort, maxPort)
		}
		return nil
	}
}
