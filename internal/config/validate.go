package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rileyhilliard/upwatch/internal/errors"
)

// Validate checks the config and returns a structured ErrConfig error
// describing the first class of problem found. Missing credentials are
// reported before anything else so the process can fail fast.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig, "No configuration loaded", "")
	}

	if err := validation.ValidateStruct(&cfg.Pushover,
		validation.Field(&cfg.Pushover.Token,
			validation.Required.Error(EnvPushoverToken+" is not set")),
		validation.Field(&cfg.Pushover.User,
			validation.Required.Error(EnvPushoverUser+" is not set")),
	); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Pushover credentials are missing",
			fmt.Sprintf("Export %s and %s before starting upwatch", EnvPushoverToken, EnvPushoverUser))
	}

	if err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.Endpoint, validation.Required, is.URL),
		validation.Field(&cfg.PollInterval, validation.Required, validation.Min(cfg.PollTick)),
		validation.Field(&cfg.PollTick, validation.Required),
		validation.Field(&cfg.CheckTimeout, validation.Required),
		validation.Field(&cfg.RenderInterval, validation.Required),
		validation.Field(&cfg.SlotInterval, validation.Required),
	); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid monitor settings",
			"Check the built-in endpoint and interval constants")
	}

	return nil
}
