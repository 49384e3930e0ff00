package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DisableColors switches lipgloss to monochrome output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ConfigureColor disables colors when noColor is set, when NO_COLOR is
// present in the environment, or when out is not a terminal.
func ConfigureColor(out *os.File, noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || !IsTerminal(out) {
		DisableColors()
	}
}
