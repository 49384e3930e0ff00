package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// LineWriter owns a single repaintable terminal line. Repaint overwrites the
// line in place; Event prints a permanent newline-terminated line above it.
// All methods are safe for concurrent use.
type LineWriter struct {
	mu        sync.Mutex
	out       io.Writer
	lastWidth int
}

// NewLineWriter wraps out.
func NewLineWriter(out io.Writer) *LineWriter {
	return &LineWriter{out: out}
}

// Repaint replaces the current line with line. No newline is written.
func (l *LineWriter) Repaint(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clear()
	fmt.Fprint(l.out, line)
	l.lastWidth = lipgloss.Width(line)
}

// Event clears the live line and prints line followed by a newline. The next
// Repaint starts on the following row.
func (l *LineWriter) Event(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clear()
	fmt.Fprintln(l.out, line)
}

// Finish ends the live line, leaving its last content visible.
func (l *LineWriter) Finish() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lastWidth > 0 {
		fmt.Fprintln(l.out)
		l.lastWidth = 0
	}
}

// clear blanks the previously painted content. Caller holds mu.
func (l *LineWriter) clear() {
	if l.lastWidth == 0 {
		return
	}
	fmt.Fprint(l.out, "\r"+strings.Repeat(" ", l.lastWidth)+"\r")
	l.lastWidth = 0
}
