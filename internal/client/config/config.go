package config

import "time"

// Config holds runtime settings for the Antab CLI.
//
// Fields:
//   - APIBaseURL: base URL of the booking API, no trailing slash.
//   - RequestTimeout: per-request deadline of the HTTP client.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - SessionDBPath: location of the local session database file.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	SessionDBPath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3333"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.SessionDBPath = "antabcli.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
