// Package config loads runtime configuration for the PensUp CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local database file
//	-q int      per-value store quota in bytes (0 = unlimited)
//	-r string   base URL of the remote creator endpoint
//	-k string   API key for the remote creator endpoint
//	-t int      remote fetch timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "8s" or integer nanoseconds:
//
//	{
//	  "local_db_path": "pensup.db",
//	  "quota_bytes": 5242880,
//	  "remote_base_url": "https://example.supabase.co",
//	  "remote_api_key": "anon-key",
//	  "fetch_timeout": "8s"
//	}
//
// Primary API
//
//   - type Config                     — holds the database path, store quota and remote endpoint settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
