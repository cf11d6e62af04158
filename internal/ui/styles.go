// Package ui renders CLI output: styled when stdout is a terminal, plain
// otherwise so reports stay greppable in CI logs.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorDim   = lipgloss.Color("#6b7280")

	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// isTerminal can be replaced in tests.
var isTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func styled(style lipgloss.Style, s string) string {
	if !isTerminal() {
		return s
	}
	return style.Render(s)
}

func Title(s string) string   { return styled(titleStyle, s) }
func Success(s string) string { return styled(successStyle, s) }
func Error(s string) string   { return styled(errorStyle, s) }
func Dim(s string) string     { return styled(dimStyle, s) }
