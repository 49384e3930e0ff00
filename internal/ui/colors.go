package ui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Semantic colors for status indication, as ANSI codes for broad terminal
// compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// Pastel tuning (HSL).
const (
	pastelSaturation = 0.55
	pastelLightness  = 0.78
)

// Pastel returns a soft color for the given hue in degrees. Hues outside
// [0, 360) wrap around; NaN and infinities map to hue 0.
func Pastel(hue float64) lipgloss.Color {
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		hue = 0
	}
	hue = math.Mod(math.Mod(hue, 360)+360, 360)
	c := colorful.Hsl(hue, pastelSaturation, pastelLightness).Clamped()
	return lipgloss.Color(c.Hex())
}

// SuccessStyle renders text in bold green.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
}

// ErrorStyle renders text in bold red.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
}

// WarningStyle renders text in yellow.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// MutedStyle renders secondary text such as timestamps.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}
