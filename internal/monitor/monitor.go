package monitor

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rileyhilliard/upwatch/internal/config"
	"github.com/rileyhilliard/upwatch/internal/logger"
	"github.com/rileyhilliard/upwatch/internal/ui"
)

// Monitor wires the startup check, the render loop and the poll loop
// together for one endpoint.
type Monitor struct {
	cfg      *config.Config
	checker  Checker
	notifier Notifier
	out      *ui.LineWriter
	rand     Rand
	log      logger.Logger
	now      func() time.Time
}

// Option customizes a Monitor.
type Option func(*Monitor)

// WithOutput sends the status display to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Monitor) { m.out = ui.NewLineWriter(w) }
}

// WithRand replaces the random source used by the renderer.
func WithRand(r Rand) Option {
	return func(m *Monitor) { m.rand = r }
}

// WithLogger replaces the diagnostic logger.
func WithLogger(l logger.Logger) Option {
	return func(m *Monitor) { m.log = l }
}

// WithClock replaces time.Now for check timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// New creates a Monitor for cfg.Endpoint. cfg is assumed to be validated.
func New(cfg *config.Config, checker Checker, notifier Notifier, opts ...Option) *Monitor {
	m := &Monitor{
		cfg:      cfg,
		checker:  checker,
		notifier: notifier,
		out:      ui.NewLineWriter(os.Stdout),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      logger.NewEnvLogger("[monitor]"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run performs the startup check, then animates and polls until ctx is
// cancelled. It returns once the render loop has stopped and the final
// status line is printed. The poll loop is not joined: a check still in
// flight finishes on its own timeout.
func (m *Monitor) Run(ctx context.Context) error {
	up := m.checker.Check(context.WithoutCancel(ctx))
	checkedAt := m.now()
	state := NewState(up, checkedAt)

	m.out.Event(fmt.Sprintf("Watching %s, checking every %s",
		m.cfg.Endpoint, m.cfg.PollInterval))
	m.out.Event(checkLine(up, checkedAt, m.cfg.Endpoint))

	renderer := NewRenderer(state, m.out, m.rand, m.cfg.RenderInterval, m.cfg.SlotInterval)
	poller := &Poller{
		state:    state,
		checker:  m.checker,
		notifier: m.notifier,
		out:      m.out,
		log:      m.log,
		now:      m.now,
		endpoint: m.cfg.Endpoint,
		cadence:  m.cfg.PollInterval,
		tick:     m.cfg.PollTick,
	}

	renderDone := make(chan struct{})
	go func() {
		defer close(renderDone)
		renderer.Run(ctx)
	}()
	go poller.Run(ctx)

	<-renderDone

	final := state.Snapshot()
	m.out.Finish()
	m.out.Event(fmt.Sprintf("%s %s stopped",
		statusPrefix(final.Up, final.LastCheck),
		ui.MutedStyle().Render(ui.SymbolStopped)))
	return nil
}
