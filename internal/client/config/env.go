package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory seeds the environment first; its absence is not an
// error.
//
// Recognized variables:
//
//	STORYLINE_API_URL        base URL of the backend API
//	STORYLINE_API_KEY        identity provider API key
//	STORYLINE_SIGNIN_URL     identity sign-in endpoint
//	STORYLINE_TOKEN_URL      identity token refresh endpoint
//	STORYLINE_SNAPSHOT_PATH  local snapshot database path
//	STORYLINE_WAIT_TIMEOUT   sign-in wait timeout in seconds
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("STORYLINE_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("STORYLINE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("STORYLINE_SIGNIN_URL"); v != "" {
		cfg.SignInURL = v
	}
	if v := os.Getenv("STORYLINE_TOKEN_URL"); v != "" {
		cfg.TokenURL = v
	}
	if v := os.Getenv("STORYLINE_SNAPSHOT_PATH"); v != "" {
		cfg.SnapshotPath = v
	}
	if v := os.Getenv("STORYLINE_WAIT_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.WaitTimeout = time.Duration(secs) * time.Second
		}
	}
}
