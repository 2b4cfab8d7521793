package config

import "time"

// Config holds runtime settings for the termcord client.
//
// Fields:
//   - APIBaseURL: base endpoint of the messaging platform's REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - MessageLimit: transcript page size for channel message fetches.
//   - CredentialsDB: path of the local SQLite file holding the credential slot.
type Config struct {
	APIBaseURL     string        `env:"TERMCORD_API_BASE_URL"`
	RequestTimeout time.Duration `env:"TERMCORD_REQUEST_TIMEOUT"`
	MessageLimit   int           `env:"TERMCORD_MESSAGE_LIMIT"`
	CredentialsDB  string        `env:"TERMCORD_CREDENTIALS_DB"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://discord.com/api/v10"
	c.RequestTimeout = 30 * time.Second
	c.MessageLimit = 50
	c.CredentialsDB = "termcord.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if one is named via -c/-config) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
