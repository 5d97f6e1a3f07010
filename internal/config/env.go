package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig maps environment variables onto Config fields. Only variables
// that are actually set override the current values.
type envConfig struct {
	BaseURL            *string        `env:"RANDOMUSERS_BASE_URL"`
	PageSize           *int           `env:"RANDOMUSERS_PAGE_SIZE"`
	PrefetchThreshold  *int           `env:"RANDOMUSERS_PREFETCH_THRESHOLD"`
	RequestTimeout     *time.Duration `env:"RANDOMUSERS_REQUEST_TIMEOUT"`
	DatabaseDSN        *string        `env:"RANDOMUSERS_DATABASE_DSN"`
	FreshSeedOnRefresh *bool          `env:"RANDOMUSERS_FRESH_SEED_ON_REFRESH"`
}

// parseEnv overlays cfg with values from the environment.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.BaseURL != nil {
		cfg.BaseURL = *ec.BaseURL
	}
	if ec.PageSize != nil {
		cfg.PageSize = *ec.PageSize
	}
	if ec.PrefetchThreshold != nil {
		cfg.PrefetchThreshold = *ec.PrefetchThreshold
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.DatabaseDSN != nil {
		cfg.DatabaseDSN = *ec.DatabaseDSN
	}
	if ec.FreshSeedOnRefresh != nil {
		cfg.FreshSeedOnRefresh = *ec.FreshSeedOnRefresh
	}
}
