package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rileyhilliard/upwatch/internal/config"
	"github.com/rileyhilliard/upwatch/internal/doctor"
	"github.com/rileyhilliard/upwatch/internal/errors"
	"github.com/rileyhilliard/upwatch/internal/probe"
	"github.com/rileyhilliard/upwatch/internal/ui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check credentials and endpoint reachability",
	Long: `Run one-off diagnostics without starting the monitor:

  - PUSHOVER_TOKEN and PUSHOVER_USER are set
  - the endpoint answers a single liveness check

Exits 1 if a required check fails. An unreachable endpoint is only a warning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		prober := probe.NewHTTPChecker(cfg.Endpoint, cfg.CheckTimeout)
		return doctorCommand(cmd.Context(), cmd.OutOrStdout(), cfg, prober)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func doctorCommand(ctx context.Context, out io.Writer, cfg *config.Config, prober doctor.Prober) error {
	checks := []doctor.Check{
		&doctor.CredentialsCheck{Config: cfg},
		&doctor.EndpointCheck{Endpoint: cfg.Endpoint, Prober: prober},
	}

	results := doctor.RunAll(ctx, checks)
	for _, r := range results {
		fmt.Fprintf(out, "%s %s\n", statusSymbol(r.Status), r.Message)
		if r.Suggestion != "" && r.Status != doctor.StatusPass {
			fmt.Fprintf(out, "  %s\n", ui.MutedStyle().Render(r.Suggestion))
		}
	}

	if doctor.HasFailures(results) {
		return errors.NewExitError(1)
	}
	return nil
}

func statusSymbol(s doctor.CheckStatus) string {
	switch s {
	case doctor.StatusPass:
		return ui.SuccessStyle().Render(ui.SymbolSuccess)
	case doctor.StatusWarn:
		return ui.WarningStyle().Render("!")
	default:
		return ui.ErrorStyle().Render(ui.SymbolFail)
	}
}
