// Package config loads runtime configuration for the famfin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the local database file
//	-cur string ISO currency code used for amounts
//	-r int      subscription renewal reminder window (days)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the reminder window, so values can
// be either strings like "72h" or integer nanoseconds:
//
//	{
//	  "database_path": "famfin.db",
//	  "currency": "INR",
//	  "renewal_reminder_window": "168h"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
