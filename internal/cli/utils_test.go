package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshipatil0812/finance-family/internal/config"
	"github.com/sakshipatil0812/finance-family/internal/models"
	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	got, err := parseAmount(" 123.45 ")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("123.45")))

	_, err = parseAmount("abc")
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = parseDate("29/08/2026")
	require.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	got, err := parseMonth("2026-08")
	require.NoError(t, err)
	assert.Equal(t, "2026-08", got)

	got, err = parseMonth("")
	require.NoError(t, err)
	assert.Equal(t, models.MonthOf(time.Now()), got)

	_, err = parseMonth("August")
	require.Error(t, err)
}

func TestMoney(t *testing.T) {
	a := &App{config: &config.Config{Currency: "INR"}}
	assert.Equal(t, "99.90 INR", a.money(decimal.RequireFromString("99.9")))
}
