// Package wizard interactively builds a starter stack file.
//
// It asks a handful of questions about the first service and writes a
// commented stack.yaml that loads and validates cleanly.
package wizard
