package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/upwatch/internal/logger"
	"github.com/rileyhilliard/upwatch/internal/ui"
)

// Checker reports whether the monitored endpoint is up. Implementations
// fold every failure into false and bound their own duration.
type Checker interface {
	Check(ctx context.Context) bool
}

// Notifier delivers a push notification.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

const notifyTitle = "upwatch"

// Poller runs a liveness check whenever enough elapsed time has built up in
// State, and notifies once per up->down transition.
type Poller struct {
	state    *State
	checker  Checker
	notifier Notifier
	out      *ui.LineWriter
	log      logger.Logger
	now      func() time.Time

	endpoint string
	cadence  time.Duration
	tick     time.Duration
}

// Run calls Tick every p.tick until ctx is cancelled. A check already in
// flight when ctx is cancelled runs to completion.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick performs a check if one is due and reports whether it did. No new
// check starts once ctx is cancelled.
func (p *Poller) Tick(ctx context.Context) bool {
	if ctx.Err() != nil || !p.state.Due(p.cadence) {
		return false
	}

	// The check runs without the lock so the render loop keeps animating.
	// It is bounded by the checker's own timeout, not by ctx.
	up := p.checker.Check(context.WithoutCancel(ctx))
	at := p.now()
	tr := p.state.Complete(up, at)

	p.log.Debug("check of %s at %s: up=%t transition=%s", p.endpoint, at.Format(timeLayout), up, tr)

	if ctx.Err() == nil {
		p.out.Event(checkLine(up, at, p.endpoint))
	}

	switch tr {
	case TransitionDown:
		if ctx.Err() == nil {
			p.out.Event(fmt.Sprintf("[%s] %s", formatCheckTime(at),
				ui.ErrorStyle().Render("The server is down!")))
		}
		p.notifyDown(ctx)
	case TransitionUp:
		if ctx.Err() == nil {
			p.out.Event(fmt.Sprintf("[%s] %s", formatCheckTime(at),
				ui.SuccessStyle().Render("The server is back up")))
		}
	}

	return true
}

// notifyDown is best-effort: a failure is logged and otherwise ignored.
func (p *Poller) notifyDown(ctx context.Context) {
	msg := fmt.Sprintf("Server %s is down!", p.endpoint)
	if err := p.notifier.Notify(context.WithoutCancel(ctx), notifyTitle, msg); err != nil {
		p.log.Debug("notification failed: %v", err)
	}
}

// checkLine is the event printed after every completed check.
func checkLine(up bool, at time.Time, endpoint string) string {
	sym := ui.SuccessStyle().Render(ui.SymbolSuccess)
	if !up {
		sym = ui.ErrorStyle().Render(ui.SymbolFail)
	}
	return fmt.Sprintf("%s %s %s", statusPrefix(up, at), sym, ui.MutedStyle().Render(endpoint))
}
