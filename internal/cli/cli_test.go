package cli

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rileyhilliard/upwatch/internal/config"
	"github.com/rileyhilliard/upwatch/internal/errors"
	"github.com/rileyhilliard/upwatch/internal/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingChecker struct {
	mu    sync.Mutex
	calls int
}

func (c *countingChecker) Check(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return true
}

func (c *countingChecker) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type nopNotifier struct{}

func (nopNotifier) Notify(ctx context.Context, title, message string) error { return nil }

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureRoot redirects the root command's output for one test.
func captureRoot(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		versionShort = false
	})
	return stdout, stderr
}

func TestWatch_MissingSecretsFailsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name  string
		token string
		user  string
		want  string
	}{
		{name: "both unset", want: "Pushover credentials are missing"},
		{name: "token unset", user: "u", want: config.EnvPushoverToken + " is not set"},
		{name: "user unset", token: "t", want: config.EnvPushoverUser + " is not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvPushoverToken, tt.token)
			t.Setenv(config.EnvPushoverUser, tt.user)

			built := false
			checker := &countingChecker{}
			build := func(cfg *config.Config) (monitor.Checker, monitor.Notifier) {
				built = true
				return checker, nopNotifier{}
			}

			err := watchCommand(context.Background(), &bytes.Buffer{}, build)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.want)
			assert.False(t, built, "collaborators must not be built")
			assert.Zero(t, checker.Calls())
		})
	}
}

func TestExecute_MissingSecretsExitsOne(t *testing.T) {
	t.Setenv(config.EnvPushoverToken, "")
	t.Setenv(config.EnvPushoverUser, "")
	_, stderr := captureRoot(t)

	code := execute(context.Background(), []string{})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "✗ Pushover credentials are missing")
	assert.Contains(t, stderr.String(), "PUSHOVER_TOKEN")
}

func TestExecute_RejectsArguments(t *testing.T) {
	_, stderr := captureRoot(t)

	code := execute(context.Background(), []string{"extra"})

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}

func TestWatch_RunsUntilCancelled(t *testing.T) {
	t.Setenv(config.EnvPushoverToken, "t")
	t.Setenv(config.EnvPushoverUser, "u")

	checker := &countingChecker{}
	build := func(cfg *config.Config) (monitor.Checker, monitor.Notifier) {
		assert.Equal(t, "t", cfg.Pushover.Token)
		assert.Equal(t, config.DefaultEndpoint, cfg.Endpoint)
		return checker, nopNotifier{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	errCh := make(chan error, 1)
	go func() { errCh <- watchCommand(ctx, &out, build) }()

	require.Eventually(t, func() bool { return checker.Calls() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	assert.Contains(t, out.String(), "stopped")
}

func TestHasTrailingNewline(t *testing.T) {
	assert.True(t, hasTrailingNewline("x\n"))
	assert.False(t, hasTrailingNewline("x"))
	assert.False(t, hasTrailingNewline(""))
}

func TestVersionCommand(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	defer SetVersionInfo(originalVersion, originalCommit, originalDate)

	SetVersionInfo("1.2.3", "abc1234", "2026-10-19T12:00:00Z")
	stdout, _ := captureRoot(t)

	code := execute(context.Background(), []string{"version"})
	require.Equal(t, 0, code)

	output := stdout.String()
	assert.Contains(t, output, "upwatch v1.2.3")
	assert.Contains(t, output, "commit: abc1234")
	assert.Contains(t, output, "built: 2026-10-19T12:00:00Z")
	assert.Contains(t, output, "go: "+runtime.Version())
	assert.Contains(t, output, "os/arch: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCommandShort(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "1.2.3"
	stdout, _ := captureRoot(t)

	code := execute(context.Background(), []string{"version", "--short"})
	require.Equal(t, 0, code)
	assert.Equal(t, "1.2.3", strings.TrimSpace(stdout.String()))
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"dev", "dev"},
		{"1.0.0", "v1.0.0"},
		{"v1.0.0", "v1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.in))
		})
	}
}
