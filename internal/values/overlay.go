package values

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultStackFilename is the default stack file name.
const DefaultStackFilename = "stack.yaml"

// OverlayPath returns the overlay file path for an environment, derived
// from the base path: stack.yaml + "prod" -> stack-prod.yaml.
func OverlayPath(basePath, env string) string {
	ext := filepath.Ext(basePath)
	stem := strings.TrimSuffix(basePath, ext)
	return fmt.Sprintf("%s-%s%s", stem, env, ext)
}

// ResolveEnvironment reads the overlay for a named environment. The overlay
// must live next to the base file. A missing overlay is reported as an
// UnknownEnvironmentError listing the environments that do exist.
func ResolveEnvironment(basePath, env string) ([]byte, error) {
	path := OverlayPath(basePath, env)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			known, _ := Environments(basePath)
			return nil, &UnknownEnvironmentError{Name: env, Known: known}
		}
		return nil, fmt.Errorf("failed to read overlay %s: %w", path, err)
	}
	return data, nil
}

// Environments lists the overlay names found next to the base file, sorted.
func Environments(basePath string) ([]string, error) {
	ext := filepath.Ext(basePath)
	stem := strings.TrimSuffix(filepath.Base(basePath), ext)

	matches, err := filepath.Glob(OverlayPath(basePath, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list overlays: %w", err)
	}

	envs := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), ext)
		envs = append(envs, strings.TrimPrefix(name, stem+"-"))
	}
	sort.Strings(envs)
	return envs, nil
}
