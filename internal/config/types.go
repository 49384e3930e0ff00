package config

import "time"

// Fixed monitoring parameters. The endpoint and poll cadence are compile-time
// constants; only the notification credentials come from the environment.
const (
	DefaultEndpoint       = "https://api.spacebots.io:8443/ping"
	DefaultPollInterval   = 300 * time.Second
	DefaultCheckTimeout   = 10 * time.Second
	DefaultRenderInterval = 300 * time.Millisecond
	DefaultPollTick       = time.Second
	DefaultSlotInterval   = 30 * time.Second
	DefaultSlotCount      = 10
)

// Environment variables holding the Pushover credentials.
const (
	EnvPushoverToken = "PUSHOVER_TOKEN"
	EnvPushoverUser  = "PUSHOVER_USER"
)

// Config is the resolved runtime configuration for a monitor run.
type Config struct {
	// Endpoint is the URL probed by each liveness check.
	Endpoint string `mapstructure:"endpoint"`

	// PollInterval is how much elapsed time must accumulate before a check runs.
	PollInterval time.Duration `mapstructure:"poll_interval"`

	// PollTick is how often the poll loop looks at the elapsed time.
	PollTick time.Duration `mapstructure:"poll_tick"`

	// CheckTimeout bounds a single liveness check.
	CheckTimeout time.Duration `mapstructure:"check_timeout"`

	// RenderInterval is the status line repaint period.
	RenderInterval time.Duration `mapstructure:"render_interval"`

	// SlotInterval is the elapsed time per additional lit slot in the bar.
	// It is kept separate from PollInterval; the defaults happen to line up
	// so the bar saturates exactly when the next check is due.
	SlotInterval time.Duration `mapstructure:"slot_interval"`

	Pushover PushoverConfig `mapstructure:"pushover"`
}

// PushoverConfig holds the credentials for the Pushover messages API.
type PushoverConfig struct {
	Token string `mapstructure:"token"`
	User  string `mapstructure:"user"`
}

// DefaultConfig returns a Config populated with the built-in constants and
// no credentials.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:       DefaultEndpoint,
		PollInterval:   DefaultPollInterval,
		PollTick:       DefaultPollTick,
		CheckTimeout:   DefaultCheckTimeout,
		RenderInterval: DefaultRenderInterval,
		SlotInterval:   DefaultSlotInterval,
	}
}
