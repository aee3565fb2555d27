package config

import "time"

// Config holds runtime settings for the famfin CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite file holding all data.
//   - Currency: ISO 4217 code applied to every amount in the ledger.
//   - RenewalReminderWindow: how far ahead upcoming subscription renewals
//     are reported.
type Config struct {
	DatabasePath          string
	Currency              string
	RenewalReminderWindow time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "famfin.db"
	c.Currency = "INR"
	c.RenewalReminderWindow = 7 * 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
