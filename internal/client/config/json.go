package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avelichka/termcord/internal/flagx"
	"github.com/avelichka/termcord/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string
// like "30s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	MessageLimit   int            `json:"message_limit"`
	CredentialsDB  string         `json:"credentials_db"`
}

// parseJson overlays Config with values loaded from a JSON file named via
// the -c or -config flags. With no file named, nothing happens. Only the
// fields present in the file (non-zero after unmarshal) are copied, so a
// partial file overrides selectively.
//
// Read or unmarshal errors panic; the caller decides whether to recover.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.MessageLimit != 0 {
		cfg.MessageLimit = jc.MessageLimit
	}
	if jc.CredentialsDB != "" {
		cfg.CredentialsDB = jc.CredentialsDB
	}
}
