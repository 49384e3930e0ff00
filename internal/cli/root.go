package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/upwatch/internal/errors"
	"github.com/rileyhilliard/upwatch/internal/ui"
	"github.com/spf13/cobra"
)

var noColor bool

// rootCmd runs the monitor when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "upwatch",
	Short: "Watch an HTTP endpoint and get a push notification when it goes down",
	Long: `upwatch polls a single HTTP endpoint every five minutes and keeps an
animated status line on screen between checks. When the endpoint goes from
up to down it sends one Pushover notification.

Requires PUSHOVER_TOKEN and PUSHOVER_USER in the environment.

Press Ctrl+C to stop.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.ConfigureColor(os.Stdout, noColor)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchCommand(ctx, cmd.OutOrStdout(), defaultCollaborators)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits the process with the appropriate
// code: 1 for configuration errors and other failures, 0 otherwise.
func Execute() {
	os.Exit(execute(context.Background(), os.Args[1:]))
}

func execute(ctx context.Context, args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if code, ok := errors.GetExitCode(err); ok {
		return code
	}
	fmt.Fprint(rootCmd.ErrOrStderr(), err.Error())
	if !hasTrailingNewline(err.Error()) {
		fmt.Fprintln(rootCmd.ErrOrStderr())
	}
	return 1
}

func hasTrailingNewline(s string) bool {
	return len(s) > 0 && s[len(s)-1] == '\n'
}
