package config

import "time"

// Config holds runtime settings for the FleetDesk client.
//
// Fields:
//   - DatabasePath: location of the embedded SQLite database.
//   - SessionSecret: HMAC key for signing session tokens.
//   - TokenTTL: how long a sign-in remains valid.
//   - SearchDebounce: quiescence window before a search term is applied.
//   - LogFormat: "text" or "json".
type Config struct {
	DatabasePath   string
	SessionSecret  string
	TokenTTL       time.Duration
	SearchDebounce time.Duration
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "fleetdesk.db"
	c.SessionSecret = "fleetdesk-dev-secret"
	c.TokenTTL = 8 * time.Hour
	c.SearchDebounce = 300 * time.Millisecond
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
