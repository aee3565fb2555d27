package cli

import (
	"context"
	"fmt"
	"os"
)

// SetBudget sets or replaces the limit for one category in one month.
func (a *App) SetBudget(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}

	monthStr, err := getSimpleText(a.reader, "Month (YYYY-MM, empty for current)", os.Stdout)
	if err != nil {
		return err
	}
	month, err := parseMonth(monthStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	limitStr, err := getSimpleText(a.reader, "Limit", os.Stdout)
	if err != nil {
		return err
	}
	limit, err := parseAmount(limitStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	b, err := a.ledger.SetBudget(ctx, category, month, limit)
	if err != nil {
		a.log.Error(ctx, "error setting budget", "error", err)
		printlnFn("Could not set budget:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Budget for %s in %s set to %s", b.Category, b.Month, a.money(b.Limit)))
	return nil
}

// ListBudgets prints the budgets configured for a month.
func (a *App) ListBudgets(ctx context.Context) error {
	monthStr, err := getSimpleText(a.reader, "Month (YYYY-MM, empty for current)", os.Stdout)
	if err != nil {
		return err
	}
	month, err := parseMonth(monthStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	list, err := a.ledger.ListBudgets(ctx, month)
	if err != nil {
		a.log.Error(ctx, "error listing budgets", "error", err)
		printlnFn("Could not list budgets:", err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("No budgets for", month)
		return nil
	}

	for _, b := range list {
		printlnFn(fmt.Sprintf("%-12s %10s  %s", b.Category, a.money(b.Limit), b.Id))
	}
	return nil
}
