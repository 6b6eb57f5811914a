// Package config assembles runtime settings for the ForumApp client.
// Sources are applied in order, later ones winning: built-in defaults,
// a .env file, a JSON config file (-c/-config), command-line flags.
package config

import "time"

// Config holds runtime settings for the ForumApp CLI.
//
// Fields:
//   - BaseURL: root URL of the forum backend (scheme + host + port).
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: sqlite file holding the persisted session.
//   - Debug: enables debug-level logging.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
	Debug          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "forum.db"
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
