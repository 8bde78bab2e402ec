// Package config loads runtime configuration for the Storyline CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file
//     (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-k string   identity provider API key
//	-s string   path of the local snapshot database
//	-w int      sign-in wait timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.example.com",
//	  "api_key": "AIza...",
//	  "snapshot_path": "storyline.db",
//	  "wait_timeout": "5s"
//	}
package config
