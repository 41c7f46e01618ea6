package config

import "time"

// Config holds runtime settings for the PensUp CLI.
//
// Fields:
//   - LocalDBPath: path of the client-resident SQLite database.
//   - QuotaBytes: per-value write quota of the durable store; 0 disables it.
//   - RemoteBaseURL: base URL of the creator-profile endpoint. Empty keeps
//     the client fixture-only.
//   - RemoteAPIKey: API key sent with every remote request.
//   - FetchTimeout: upper bound on a single remote creator lookup.
type Config struct {
	LocalDBPath   string
	QuotaBytes    int
	RemoteBaseURL string
	RemoteAPIKey  string
	FetchTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LocalDBPath = "pensup.db"
	c.QuotaBytes = 5 * 1024 * 1024
	c.RemoteBaseURL = ""
	c.RemoteAPIKey = ""
	c.FetchTimeout = 8 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
