package config

import (
	"github.com/lucasb-eyer/go-colorful"

	errUtils "github.com/cloudposse/tokenicon/errors"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/schema"
)

// Validate rejects values no component can work with.
func Validate(cfg *schema.Configuration) error {
	if _, err := log.ParseLogLevel(cfg.Logs.Level); err != nil {
		return invalid("logs.level", cfg.Logs.Level, err)
	}

	if cfg.Icons.Inset < 0 {
		return invalid("icons.inset", cfg.Icons.Inset, nil)
	}
	if cfg.Icons.CornerRadius < 0 {
		return invalid("icons.corner_radius", cfg.Icons.CornerRadius, nil)
	}
	if cfg.Icons.Size <= 0 {
		return invalid("icons.size", cfg.Icons.Size, nil)
	}
	if _, err := colorful.Hex(cfg.Icons.NeutralBackground); err != nil {
		return errUtils.Build(errUtils.ErrInvalidColor).
			WithCause(err).
			WithContext("key", "icons.neutral_background").
			WithContext("value", cfg.Icons.NeutralBackground).
			WithHint("Colors must be written as #RRGGBB").
			WithExitCode(errUtils.ExitCodeConfig).
			Err()
	}

	if cfg.Fetch.Timeout <= 0 {
		return invalid("fetch.timeout", cfg.Fetch.Timeout.String(), nil)
	}
	if cfg.Fetch.MaxBytes <= 0 {
		return invalid("fetch.max_bytes", cfg.Fetch.MaxBytes, nil)
	}
	if cfg.Fetch.CacheTTL < 0 {
		return invalid("fetch.cache_ttl", cfg.Fetch.CacheTTL.String(), nil)
	}

	switch cfg.Fetch.Retry.BackoffStrategy {
	case schema.BackoffConstant, schema.BackoffLinear, schema.BackoffExponential:
	default:
		return invalid("fetch.retry.backoff_strategy", string(cfg.Fetch.Retry.BackoffStrategy), nil)
	}
	if cfg.Fetch.Retry.MaxAttempts <= 0 {
		return invalid("fetch.retry.max_attempts", cfg.Fetch.Retry.MaxAttempts, nil)
	}

	return nil
}

func invalid(key string, value interface{}, cause error) error {
	return errUtils.Build(errUtils.ErrInvalidConfigValue).
		WithCause(cause).
		WithContext("key", key).
		WithContext("value", value).
		WithExitCode(errUtils.ExitCodeConfig).
		Err()
}
