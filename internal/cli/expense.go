package cli

import (
	"context"
	"fmt"
	"os"
)

// AddExpense records a single spending entry.
func (a *App) AddExpense(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}

	amountStr, err := getSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := parseAmount(amountStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	dateStr, err := getSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		return err
	}
	spentAt, err := parseDate(dateStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	e, err := a.ledger.AddExpense(ctx, category, note, amount, spentAt)
	if err != nil {
		a.log.Error(ctx, "error adding expense", "error", err)
		printlnFn("Could not add expense:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Recorded %s on %s (%s)", a.money(e.Amount), e.Category, e.Id))
	return nil
}

// ListExpenses prints expenses for a month, or all of them.
func (a *App) ListExpenses(ctx context.Context) error {
	monthStr, err := getSimpleText(a.reader, "Month (YYYY-MM, empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	month := ""
	if monthStr != "" {
		month, err = parseMonth(monthStr)
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
	}

	list, err := a.ledger.ListExpenses(ctx, month)
	if err != nil {
		a.log.Error(ctx, "error listing expenses", "error", err)
		printlnFn("Could not list expenses:", err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("No expenses yet.")
		return nil
	}

	for _, e := range list {
		line := fmt.Sprintf("%s  %-12s %10s  %s", e.SpentAt.Format(dateLayout), e.Category, a.money(e.Amount), e.Id)
		if e.Note != "" {
			line += "  // " + e.Note
		}
		printlnFn(line)
	}
	return nil
}
