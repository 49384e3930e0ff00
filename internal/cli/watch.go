package cli

import (
	"context"
	"io"

	"github.com/rileyhilliard/upwatch/internal/config"
	"github.com/rileyhilliard/upwatch/internal/monitor"
	"github.com/rileyhilliard/upwatch/internal/notify"
	"github.com/rileyhilliard/upwatch/internal/probe"
)

// collaboratorsFunc builds the network-facing pieces of the monitor from a
// validated config. Tests swap it for fakes.
type collaboratorsFunc func(cfg *config.Config) (monitor.Checker, monitor.Notifier)

func defaultCollaborators(cfg *config.Config) (monitor.Checker, monitor.Notifier) {
	return probe.NewHTTPChecker(cfg.Endpoint, cfg.CheckTimeout),
		notify.NewPushover(cfg.Pushover.Token, cfg.Pushover.User)
}

// watchCommand validates configuration before touching the network, then
// runs the monitor until ctx is cancelled.
func watchCommand(ctx context.Context, out io.Writer, build collaboratorsFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	checker, notifier := build(cfg)
	m := monitor.New(cfg, checker, notifier, monitor.WithOutput(out))
	return m.Run(ctx)
}
