package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// after loading a .env file from the working directory when one exists.
//
// Recognized variables:
//
//	FORUM_BASE_URL         backend root URL
//	FORUM_TIMEOUT_SECONDS  per-request timeout in seconds
//	FORUM_DB_PATH          sqlite session database path
//	FORUM_DEBUG            "1"/"true" enables debug logging
func parseEnv(cfg *Config) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	if v := os.Getenv("FORUM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FORUM_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv("FORUM_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("FORUM_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}
}
