package config

import "time"

// Config holds runtime settings for the Storyline CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend API.
//   - APIKey: identity provider API key used for sign-in and token refresh.
//   - SignInURL / TokenURL: identity endpoints; empty means provider defaults.
//   - WaitTimeout: how long an API call waits for an interactive sign-in.
//   - SnapshotPath: file path of the local snapshot database.
type Config struct {
	APIBaseURL   string
	APIKey       string
	SignInURL    string
	TokenURL     string
	WaitTimeout  time.Duration
	SnapshotPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.WaitTimeout = 5 * time.Second
	c.SnapshotPath = "storyline.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
