package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/randomusers/internal/flagx"
	"github.com/dmitrijs2005/randomusers/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. Pointers distinguish
// "absent" from zero so the file only overrides what it actually sets.
// Durations accept "30s" strings or integer nanoseconds via timex.
type JsonConfig struct {
	BaseURL            *string         `json:"base_url"`
	PageSize           *int            `json:"page_size"`
	PrefetchThreshold  *int            `json:"prefetch_threshold"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	DatabaseDSN        *string         `json:"database_dsn"`
	FreshSeedOnRefresh *bool           `json:"fresh_seed_on_refresh"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. No flag, no file, nothing happens. Read or parse
// errors panic; the caller owns recovery.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.PrefetchThreshold != nil {
		cfg.PrefetchThreshold = *jc.PrefetchThreshold
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.FreshSeedOnRefresh != nil {
		cfg.FreshSeedOnRefresh = *jc.FreshSeedOnRefresh
	}
}
