package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig is a DTO used exclusively for environment parsing. Zero
// values mean "not set" and leave the corresponding Config field alone.
type EnvConfig struct {
	DatabasePath   string        `env:"FLEETDESK_DATABASE_PATH"`
	SessionSecret  string        `env:"FLEETDESK_SESSION_SECRET"`
	TokenTTL       time.Duration `env:"FLEETDESK_TOKEN_TTL"`
	SearchDebounce time.Duration `env:"FLEETDESK_SEARCH_DEBOUNCE"`
	LogFormat      string        `env:"FLEETDESK_LOG_FORMAT"`
}

// parseEnv overlays cfg with values from the environment. A .env file in
// the working directory is loaded first when present; a missing file is
// not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.SessionSecret != "" {
		cfg.SessionSecret = ec.SessionSecret
	}
	if ec.TokenTTL != 0 {
		cfg.TokenTTL = ec.TokenTTL
	}
	if ec.SearchDebounce != 0 {
		cfg.SearchDebounce = ec.SearchDebounce
	}
	if ec.LogFormat != "" {
		cfg.LogFormat = ec.LogFormat
	}
}
