// Package config loads runtime configuration for the Antab CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the booking API
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3333",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "session_db_path": "antabcli.db"
//	}
//
// Environment variables use the same names upper-cased: API_BASE_URL,
// REQUEST_TIMEOUT, ONLINE_CHECK_INTERVAL, SESSION_DB_PATH. Durations in the
// environment are strings accepted by time.ParseDuration.
package config
