package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, seeding
// the environment from a .env file in the working directory first. A missing
// .env is fine; variables already set in the real environment win over the
// file, which is godotenv's default behavior.
//
// Populated fields:
//   - APIBaseURL from API_BASE_URL
//   - RequestTimeout from REQUEST_TIMEOUT (time.ParseDuration syntax)
//   - OnlineCheckInterval from ONLINE_CHECK_INTERVAL
//   - SessionDBPath from SESSION_DB_PATH
//
// Unset variables leave the current values untouched; unparsable durations
// are ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("ONLINE_CHECK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
	if v := os.Getenv("SESSION_DB_PATH"); v != "" {
		cfg.SessionDBPath = v
	}
}
