// Package ui provides the terminal output pieces for upwatch: a repaintable
// status line, Lip Gloss styles, and color profile selection.
//
// # Line Output
//
// LineWriter owns one terminal row. Repaint overwrites it in place with
// carriage returns and never emits a newline; Event prints a permanent line
// and lets the next Repaint start fresh below it:
//
//	lw := ui.NewLineWriter(os.Stdout)
//	lw.Repaint("[12:00:00] OK ┌─└─")
//	lw.Event("[12:05:00] OK ✓ https://example.com/ping")
//	lw.Finish()
//
// # Color Scheme
//
// Status colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess (green) - OK
//	ColorError   (red)   - DOWN
//	ColorMuted   (gray)  - secondary text
//
// Pastel derives soft colors from a hue for the animated bar. ConfigureColor
// falls back to monochrome for --no-color, NO_COLOR, or a non-terminal stdout.
package ui
