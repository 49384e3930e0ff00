package ui

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestSemanticColorsExist(t *testing.T) {
	tests := []struct {
		name  string
		color lipgloss.Color
	}{
		{"ColorSuccess", ColorSuccess},
		{"ColorError", ColorError},
		{"ColorWarning", ColorWarning},
		{"ColorMuted", ColorMuted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, string(tt.color), "%s should not be empty", tt.name)
		})
	}
}

func TestPastel(t *testing.T) {
	for _, hue := range []float64{0, 45, 120, 200, 359.9} {
		c := string(Pastel(hue))
		require.Len(t, c, 7, "hue %v", hue)
		assert.True(t, strings.HasPrefix(c, "#"))
	}
}

func TestPastel_WrapsHue(t *testing.T) {
	assert.Equal(t, Pastel(10), Pastel(370))
	assert.Equal(t, Pastel(350), Pastel(-10))
}

func TestPastel_NonFiniteHue(t *testing.T) {
	for _, hue := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.Equal(t, Pastel(0), Pastel(hue))
	}
	assert.Equal(t, Pastel(90), Pastel(3600090))
}

func TestPastel_IsLight(t *testing.T) {
	// Every channel of a pastel should sit well above black.
	for hue := 0.0; hue < 360; hue += 30 {
		c := string(Pastel(hue))
		for i := 1; i < 7; i += 2 {
			assert.GreaterOrEqual(t, c[i:i+2], "80", "hue %v channel %s too dark in %s", hue, c[i:i+2], c)
		}
	}
}

func TestStyles(t *testing.T) {
	styles := map[string]lipgloss.Style{
		"success": SuccessStyle(),
		"error":   ErrorStyle(),
		"warning": WarningStyle(),
		"muted":   MutedStyle(),
	}

	for name, style := range styles {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, style.Render(name), name)
		})
	}
}

func TestSymbols(t *testing.T) {
	assert.NotEqual(t, SymbolSuccess, SymbolFail)
	assert.NotEmpty(t, SymbolStopped)
}
