// Package handlers implements the business logic for CLI commands.
//
// Command definitions in the commands package parse flags and delegate
// here. Handlers are framework-agnostic and use replaceable factory
// variables so they can be tested without touching the filesystem, a
// cluster, or an object store.
package handlers

import (
	"fmt"
	"os"

	"github.com/jfellner/stackgen/internal/emit"
	"github.com/jfellner/stackgen/internal/expand"
	"github.com/jfellner/stackgen/internal/ui"
	"github.com/jfellner/stackgen/internal/values"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	loadStack   = values.Load
	expandStack = expand.Expand
	emitBundle  = emit.Bytes
)

// RenderOptions configures a render run.
type RenderOptions struct {
	// File is the base stack file path.
	File string

	// Environment selects the overlay to merge, empty for base only.
	Environment string

	// Sets are --set overrides applied after the overlay.
	Sets []string

	// Output is the destination path; empty or "-" means stdout.
	Output string
}

// renderResult carries everything a render run produced.
type renderResult struct {
	stack  *values.Stack
	docs   []expand.Document
	bundle []byte

	// partial holds aggregated kind-scoped expansion errors. The bundle
	// still contains every document that did render.
	partial error
}

// renderPipeline runs load -> expand -> emit. Validation failures are fatal
// and produce no bundle; expansion failures are collected in partial.
func renderPipeline(file, env string, sets []string) (*renderResult, error) {
	stack, err := loadStack(file, env, sets)
	if err != nil {
		return nil, err
	}

	docs, expandErr := expandStack(stack)

	bundle, err := emitBundle(docs)
	if err != nil {
		return nil, err
	}

	return &renderResult{
		stack:   stack,
		docs:    docs,
		bundle:  bundle,
		partial: expandErr,
	}, nil
}

// Render renders the manifest stream for a stack and writes it to the
// configured output. On partial expansion failure the successful documents
// are still written and the aggregated error is returned.
func Render(opts RenderOptions) error {
	result, err := renderPipeline(opts.File, opts.Environment, opts.Sets)
	if err != nil {
		return err
	}

	if opts.Output == "" || opts.Output == "-" {
		if _, err := os.Stdout.Write(result.bundle); err != nil {
			return fmt.Errorf("failed to write manifests: %w", err)
		}
	} else {
		if err := os.WriteFile(opts.Output, result.bundle, 0o644); err != nil {
			return fmt.Errorf("failed to write manifests to %s: %w", opts.Output, err)
		}
		fmt.Fprintln(os.Stderr, ui.RenderSummary(result.stack.Environment, len(result.docs)))
	}

	return result.partial
}
