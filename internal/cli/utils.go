package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sakshipatil0812/finance-family/internal/models"
)

const dateLayout = "2006-01-02"

// parseAmount parses a money amount entered by the user.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// parseDate parses a "YYYY-MM-DD" date. Empty input returns the zero time,
// which callers interpret as "not provided".
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// parseMonth parses a "YYYY-MM" month bucket. Empty input returns the
// current month.
func parseMonth(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.MonthOf(time.Now()), nil
	}
	if _, err := time.Parse(models.MonthKey, s); err != nil {
		return "", fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return s, nil
}

// money renders an amount with the configured currency code.
func (a *App) money(d decimal.Decimal) string {
	return fmt.Sprintf("%s %s", d.StringFixed(2), a.config.Currency)
}
