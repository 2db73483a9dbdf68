package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/cloudposse/tokenicon/pkg/icon"
	"github.com/cloudposse/tokenicon/pkg/retry"
	"github.com/cloudposse/tokenicon/pkg/store"
	"github.com/cloudposse/tokenicon/pkg/version"
)

const (
	defaultFetchTimeout = 10 * time.Second
	defaultCacheTTL     = 7 * 24 * time.Hour
)

// setDefaultConfiguration registers every key so env overrides bind to it.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("logs.file", "/dev/stderr")
	v.SetDefault("logs.level", "Info")

	icons := icon.DefaultConfig()
	v.SetDefault("icons.inset", icons.Inset)
	v.SetDefault("icons.corner_radius", icons.CornerRadius)
	v.SetDefault("icons.neutral_background", icons.NeutralBackground)
	v.SetDefault("icons.default_path", "")
	v.SetDefault("icons.size", icons.Size)

	v.SetDefault("fetch.timeout", defaultFetchTimeout)
	v.SetDefault("fetch.max_bytes", icon.DefaultMaxBytes)
	v.SetDefault("fetch.user_agent", version.UserAgent())
	v.SetDefault("fetch.cache_dir", "")
	v.SetDefault("fetch.cache_ttl", defaultCacheTTL)
	v.SetDefault("fetch.disable_cache", false)

	r := retry.DefaultConfig()
	v.SetDefault("fetch.retry.max_attempts", r.MaxAttempts)
	v.SetDefault("fetch.retry.backoff_strategy", string(r.BackoffStrategy))
	v.SetDefault("fetch.retry.initial_delay", r.InitialDelay)
	v.SetDefault("fetch.retry.max_delay", r.MaxDelay)
	v.SetDefault("fetch.retry.random_jitter", r.RandomJitter)
	v.SetDefault("fetch.retry.multiplier", r.Multiplier)
	v.SetDefault("fetch.retry.max_elapsed_time", r.MaxElapsedTime)

	v.SetDefault("custom_icons.type", store.TypeBolt)

	v.SetDefault("tokens.path", "")
	v.SetDefault("tokens.locking", false)
}
