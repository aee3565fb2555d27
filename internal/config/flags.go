package config

import (
	"flag"
	"os"
	"time"

	"github.com/sakshipatil0812/finance-family/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string    path to the local database file (default from Config)
//	-cur string  ISO currency code (default from Config)
//	-r int       renewal reminder window in days (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-cur", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.Currency, "cur", cfg.Currency, "ISO currency code for amounts")
	reminderDays := fs.Int("r", int(cfg.RenewalReminderWindow.Hours()/24), "renewal reminder window (in days)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RenewalReminderWindow = time.Duration(*reminderDays) * 24 * time.Hour
}
