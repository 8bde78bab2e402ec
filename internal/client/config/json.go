package config

import (
	"encoding/json"
	"os"

	"github.com/storyline-app/storyline-cli/internal/flagx"
	"github.com/storyline-app/storyline-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL   string         `json:"api_base_url"`
	APIKey       string         `json:"api_key"`
	SignInURL    string         `json:"signin_url"`
	TokenURL     string         `json:"token_url"`
	WaitTimeout  timex.Duration `json:"wait_timeout"`
	SnapshotPath string         `json:"snapshot_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flag. An empty path means no JSON is loaded. Read or
// unmarshal errors panic; the caller may recover if desired.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.SignInURL != "" {
		cfg.SignInURL = jc.SignInURL
	}
	if jc.TokenURL != "" {
		cfg.TokenURL = jc.TokenURL
	}
	if jc.WaitTimeout.Duration != 0 {
		cfg.WaitTimeout = jc.WaitTimeout.Duration
	}
	if jc.SnapshotPath != "" {
		cfg.SnapshotPath = jc.SnapshotPath
	}
}
