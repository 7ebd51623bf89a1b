// Package config loads runtime configuration from a .env file and the
// environment. The MapQuest API key is required; everything else has a
// default.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when MAPQUEST_API_KEY is unset; startup
// treats it as fatal.
var ErrMissingAPIKey = errors.New("MAPQUEST_API_KEY is not set")

// Config stores all configuration for the application.
type Config struct {
	MapQuestAPIKey string `mapstructure:"MAPQUEST_API_KEY"`
	NPSBaseURL     string `mapstructure:"NPS_BASE_URL"`
	PlacesBaseURL  string `mapstructure:"PLACES_BASE_URL"`
	CachePath      string `mapstructure:"CACHE_PATH"`
	CacheBackend   string `mapstructure:"CACHE_BACKEND"`
	FetchDelayMS   int    `mapstructure:"FETCH_DELAY_MS"`
}

// FetchDelay returns the politeness delay as a duration.
func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.FetchDelayMS) * time.Millisecond
}

// Load reads configuration from a .env file if present, otherwise from
// environment variables, with defaults applied last.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// The .env file is optional; environment-only configuration is fine
	_ = v.ReadInConfig()

	v.SetDefault("NPS_BASE_URL", "https://www.nps.gov")
	v.SetDefault("PLACES_BASE_URL", "http://www.mapquestapi.com/search/v2/radius")
	v.SetDefault("CACHE_PATH", "~/.local/share/nps-explorer/cache.json")
	v.SetDefault("CACHE_BACKEND", "file")
	v.SetDefault("FETCH_DELAY_MS", 1000)

	// AutomaticEnv alone does not surface env vars through Unmarshal;
	// bind each key explicitly.
	for _, key := range []string{
		"MAPQUEST_API_KEY", "NPS_BASE_URL", "PLACES_BASE_URL",
		"CACHE_PATH", "CACHE_BACKEND", "FETCH_DELAY_MS",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.MapQuestAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &cfg, nil
}
