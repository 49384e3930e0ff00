package monitor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/upwatch/internal/ui"
)

// Rand is the random source behind the bar's jitter. *math/rand.Rand
// satisfies it; tests pass a scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

const (
	// indexChance is the per-slot, per-frame probability of showing the slot
	// index instead of its symbol.
	indexChance = 0.3

	timeLayout = "2006-01-02 15:04:05"
)

// Renderer paints the status line from State.
type Renderer struct {
	state        *State
	out          *ui.LineWriter
	rand         Rand
	period       time.Duration
	slotInterval time.Duration
}

// NewRenderer creates a renderer that accounts period of elapsed time per
// frame and lights one slot per slotInterval.
func NewRenderer(state *State, out *ui.LineWriter, rnd Rand, period, slotInterval time.Duration) *Renderer {
	return &Renderer{
		state:        state,
		out:          out,
		rand:         rnd,
		period:       period,
		slotInterval: slotInterval,
	}
}

// Run repaints every period until ctx is cancelled.
func (r *Renderer) Run(ctx context.Context) {
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}

// Tick advances the elapsed time by one period, builds the next frame and
// repaints it. The whole frame is built with the state lock held so a poll
// completing mid-frame can't leave half the slots reset.
func (r *Renderer) Tick() string {
	var line string
	r.state.frame(r.period, func(up bool, lastCheck time.Time, elapsed time.Duration, slots *[SlotCount]Slot) {
		active := ActiveSlots(elapsed, r.slotInterval)

		var bar strings.Builder
		for i := 0; i < active; i++ {
			bar.WriteString(r.renderSlot(i, &slots[i]))
		}

		line = statusPrefix(up, lastCheck) + " " + bar.String()
		r.out.Repaint(line)
	})
	return line
}

func (r *Renderer) renderSlot(index int, slot *Slot) string {
	sym := slot.Next()
	if r.rand.Float64() < indexChance {
		sym = strconv.Itoa(index)
	}

	out := lipgloss.NewStyle().
		Foreground(ui.Pastel(r.rand.Float64() * 360)).
		Render(sym)

	if r.rand.Intn(2) == 1 {
		out += " "
	}
	return out
}

// statusPrefix renders "[<check time>] <OK|DOWN>".
func statusPrefix(up bool, lastCheck time.Time) string {
	return fmt.Sprintf("[%s] %s", formatCheckTime(lastCheck), statusWord(up))
}

func statusWord(up bool) string {
	if up {
		return ui.SuccessStyle().Render("OK")
	}
	return ui.ErrorStyle().Render("DOWN")
}

func formatCheckTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(timeLayout)
}
