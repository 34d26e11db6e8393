package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "fleetdesk.db", c.DatabasePath)
	assert.Equal(t, 8*time.Hour, c.TokenTTL)
	assert.Equal(t, 300*time.Millisecond, c.SearchDebounce)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "fleetdesk.db", cfg.DatabasePath)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
}
