// Package config loads runtime configuration for the FleetDesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), optionally sourced from a
//     .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file (":memory:" for ephemeral)
//	-t int      session token lifetime (minutes)
//	-b int      search input debounce (milliseconds)
//	-f string   log format: "text" or "json"
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "300ms" or integer nanoseconds:
//
//	{
//	  "database_path": "fleetdesk.db",
//	  "token_ttl": "8h",
//	  "search_debounce": "300ms",
//	  "log_format": "text"
//	}
package config
