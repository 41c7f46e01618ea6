package config

import (
	"flag"
	"os"
	"time"

	"github.com/pensup/pensup/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-q int      per-value store quota in bytes, 0 for unlimited
//	-r string   base URL of the remote creator endpoint
//	-k string   API key for the remote creator endpoint
//	-t int      remote fetch timeout in seconds
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-q", "-r", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "path of the local database file")
	fs.IntVar(&cfg.QuotaBytes, "q", cfg.QuotaBytes, "per-value store quota in bytes (0 = unlimited)")
	fs.StringVar(&cfg.RemoteBaseURL, "r", cfg.RemoteBaseURL, "base URL of the remote creator endpoint")
	fs.StringVar(&cfg.RemoteAPIKey, "k", cfg.RemoteAPIKey, "API key for the remote creator endpoint")
	fetchTimeout := fs.Int("t", int(cfg.FetchTimeout.Seconds()), "remote fetch timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.FetchTimeout = time.Duration(*fetchTimeout) * time.Second
}
