package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverlaysKnownVariables(t *testing.T) {
	t.Setenv("STORYLINE_API_URL", "https://api.example.com")
	t.Setenv("STORYLINE_API_KEY", "key-123")
	t.Setenv("STORYLINE_WAIT_TIMEOUT", "12")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, 12*time.Second, cfg.WaitTimeout)
	assert.Equal(t, "storyline.db", cfg.SnapshotPath, "untouched fields keep their defaults")
}

func TestParseEnv_IgnoresMalformedTimeout(t *testing.T) {
	t.Setenv("STORYLINE_WAIT_TIMEOUT", "soon")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 5*time.Second, cfg.WaitTimeout)
}
