package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hbv501g/forumapp/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config; zero values leave the Config untouched
// so the file can specify only what it wants to override.
type JsonConfig struct {
	BaseURL               string `json:"base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	DatabasePath          string `json:"database_path"`
	Debug                 *bool  `json:"debug"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; with no flag, nothing is loaded.
// Read or unmarshal errors panic: a config file that exists but cannot be
// parsed is a startup fault, not something to silently skip.
func parseJson(cfg *Config) {
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
