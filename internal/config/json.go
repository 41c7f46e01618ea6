package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pensup/pensup/internal/flagx"
	"github.com/pensup/pensup/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the fetch timeout either
// as a string like "8s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	LocalDBPath   string         `json:"local_db_path"`
	QuotaBytes    int            `json:"quota_bytes"`
	RemoteBaseURL string         `json:"remote_base_url"`
	RemoteAPIKey  string         `json:"remote_api_key"`
	FetchTimeout  timex.Duration `json:"fetch_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; zero values leave the
//     earlier stage's value in place.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
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

	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.QuotaBytes != 0 {
		cfg.QuotaBytes = jc.QuotaBytes
	}
	if jc.RemoteBaseURL != "" {
		cfg.RemoteBaseURL = jc.RemoteBaseURL
	}
	if jc.RemoteAPIKey != "" {
		cfg.RemoteAPIKey = jc.RemoteAPIKey
	}
	if jc.FetchTimeout.Duration != 0 {
		cfg.FetchTimeout = time.Duration(jc.FetchTimeout.Duration)
	}
}
