package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv_OverlaysOnlySetVariables(t *testing.T) {
	t.Setenv("FLEETDESK_DATABASE_PATH", "from-env.db")
	t.Setenv("FLEETDESK_SEARCH_DEBOUNCE", "75ms")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "from-env.db", cfg.DatabasePath)
	assert.Equal(t, 75*time.Millisecond, cfg.SearchDebounce)

	// untouched variables keep their defaults
	assert.Equal(t, 8*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "text", cfg.LogFormat)
}
