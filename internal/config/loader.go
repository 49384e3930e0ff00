package config

import (
	"github.com/rileyhilliard/upwatch/internal/errors"
	"github.com/spf13/viper"
)

// Load resolves the configuration from the built-in defaults and the
// process environment. It does not validate; call Validate before use.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if err := v.BindEnv("pushover.token", EnvPushoverToken); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to bind "+EnvPushoverToken, "")
	}
	if err := v.BindEnv("pushover.user", EnvPushoverUser); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to bind "+EnvPushoverUser, "")
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid configuration",
			"This is a bug; the built-in defaults should always decode")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("poll_interval", d.PollInterval)
	v.SetDefault("poll_tick", d.PollTick)
	v.SetDefault("check_timeout", d.CheckTimeout)
	v.SetDefault("render_interval", d.RenderInterval)
	v.SetDefault("slot_interval", d.SlotInterval)
	v.SetDefault("pushover.token", "")
	v.SetDefault("pushover.user", "")
}
