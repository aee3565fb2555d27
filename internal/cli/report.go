package cli

import (
	"context"
	"fmt"
	"os"
)

// Report prints the month report: total spending, per-category totals, and
// how each budget fared.
func (a *App) Report(ctx context.Context) error {
	monthStr, err := getSimpleText(a.reader, "Month (YYYY-MM, empty for current)", os.Stdout)
	if err != nil {
		return err
	}
	month, err := parseMonth(monthStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	report, err := a.ledger.MonthlyReport(ctx, month)
	if err != nil {
		a.log.Error(ctx, "error building report", "error", err)
		printlnFn("Could not build report:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Report for %s: total spent %s", report.Month, a.money(report.Total)))

	for category, amount := range report.ByCategory {
		printlnFn(fmt.Sprintf("  %-12s %10s", category, a.money(amount)))
	}

	if len(report.Budgets) > 0 {
		printlnFn("Budgets:")
		for _, line := range report.Budgets {
			status := "ok"
			if line.Over() {
				status = "OVER"
			}
			printlnFn(fmt.Sprintf("  %-12s limit %10s  spent %10s  remaining %10s  [%s]",
				line.Category, a.money(line.Limit), a.money(line.Spent), a.money(line.Remaining), status))
		}
	}
	return nil
}
