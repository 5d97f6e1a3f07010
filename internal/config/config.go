// Package config loads runtime settings for the randomusers CLI.
//
// Sources are overlaid in order, later ones winning:
// defaults -> JSON file (-c/-config) -> environment -> flags.
package config

import "time"

// Config holds runtime settings.
type Config struct {
	// BaseURL is the root of the random-user API.
	BaseURL string

	// PageSize is how many users each page request asks for.
	PageSize int

	// PrefetchThreshold is how close to the end of the loaded list the
	// cursor may get before the next page is fetched.
	PrefetchThreshold int

	// RequestTimeout bounds every HTTP request; nothing above the
	// transport imposes its own timeout.
	RequestTimeout time.Duration

	// DatabaseDSN locates the local bookmarks database.
	DatabaseDSN string

	// FreshSeedOnRefresh selects whether a refresh starts a new random
	// stream (true) or replays the captured seed (false).
	FreshSeedOnRefresh bool
}

// LoadDefaults populates c with the defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://randomuser.me"
	c.PageSize = 25
	c.PrefetchThreshold = 5
	c.RequestTimeout = 30 * time.Second
	c.DatabaseDSN = "bookmarks.db"
	c.FreshSeedOnRefresh = true
}

// LoadConfig builds a Config from all sources in precedence order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
