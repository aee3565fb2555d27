package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sakshipatil0812/finance-family/internal/flagx"
	"github.com/sakshipatil0812/finance-family/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the reminder window either
// as a string like "168h" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath          string         `json:"database_path"`
	Currency              string         `json:"currency"`
	RenewalReminderWindow timex.Duration `json:"renewal_reminder_window"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies known fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.Currency != "" {
		cfg.Currency = jc.Currency
	}
	if jc.RenewalReminderWindow.Duration != 0 {
		cfg.RenewalReminderWindow = time.Duration(jc.RenewalReminderWindow.Duration)
	}
}
