package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/fleetdesk/internal/flagx"
	"github.com/dmitrijs2005/fleetdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify intervals either as strings like
// "300ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath   string         `json:"database_path"`
	SessionSecret  string         `json:"session_secret"`
	TokenTTL       timex.Duration `json:"token_ttl"`
	SearchDebounce timex.Duration `json:"search_debounce"`
	LogFormat      string         `json:"log_format"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file
// path comes from the -c or -config flags; without them no JSON is
// loaded. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.TokenTTL.Duration != 0 {
		cfg.TokenTTL = time.Duration(jc.TokenTTL.Duration)
	}
	if jc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = time.Duration(jc.SearchDebounce.Duration)
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
