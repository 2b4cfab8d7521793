package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with values from TERMCORD_* environment
// variables, declared via env tags on the struct. The timeout accepts the
// usual duration notation ("30s", "1m").
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
