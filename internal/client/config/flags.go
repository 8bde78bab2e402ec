package config

import (
	"flag"
	"os"
	"time"

	"github.com/storyline-app/storyline-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-k string   identity provider API key (default from Config)
//	-s string   path of the local snapshot database (default from Config)
//	-w int      sign-in wait timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-s", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "identity provider API key")
	fs.StringVar(&cfg.SnapshotPath, "s", cfg.SnapshotPath, "path of the local snapshot database")
	waitTimeout := fs.Int("w", int(cfg.WaitTimeout.Seconds()), "sign-in wait timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.WaitTimeout = time.Duration(*waitTimeout) * time.Second
}
