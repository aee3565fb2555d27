package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sakshipatil0812/finance-family/internal/models"
)

// AddSubscription records a recurring payment.
func (a *App) AddSubscription(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Subscription name", os.Stdout)
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

	periodStr, err := getSimpleText(a.reader, "Period (monthly/yearly)", os.Stdout)
	if err != nil {
		return err
	}

	renewalStr, err := getSimpleText(a.reader, "Next renewal (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	renewal, err := parseDate(renewalStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	sub, err := a.plan.AddSubscription(ctx, name, amount, models.BillingPeriod(periodStr), renewal)
	if err != nil {
		a.log.Error(ctx, "error adding subscription", "error", err)
		printlnFn("Could not add subscription:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Subscription %q added, %s %s, renews %s (%s)",
		sub.Name, a.money(sub.Amount), sub.Period, sub.NextRenewal.Format(dateLayout), sub.Id))
	return nil
}

// ListSubscriptions prints every subscription with its per-month cost.
func (a *App) ListSubscriptions(ctx context.Context) error {
	list, err := a.plan.ListSubscriptions(ctx)
	if err != nil {
		a.log.Error(ctx, "error listing subscriptions", "error", err)
		printlnFn("Could not list subscriptions:", err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("No subscriptions.")
		return nil
	}

	for _, sub := range list {
		status := "active"
		if !sub.Active {
			status = "cancelled"
		}
		printlnFn(fmt.Sprintf("%-16s %10s/%s (%s/month)  renews %s  [%s]  %s",
			sub.Name, a.money(sub.Amount), sub.Period, a.money(sub.MonthlyCost()),
			sub.NextRenewal.Format(dateLayout), status, sub.Id))
	}
	return nil
}

// CancelSubscription marks a subscription as cancelled, keeping its record.
func (a *App) CancelSubscription(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Subscription id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.plan.CancelSubscription(ctx, id); err != nil {
		a.log.Error(ctx, "error cancelling subscription", "error", err)
		printlnFn("Could not cancel subscription:", err.Error())
		return err
	}

	printlnFn("Cancelled.")
	return nil
}

// Renewals prints active subscriptions renewing within the reminder window.
func (a *App) Renewals(ctx context.Context) error {
	list, err := a.plan.UpcomingRenewals(ctx)
	if err != nil {
		a.log.Error(ctx, "error listing renewals", "error", err)
		printlnFn("Could not list renewals:", err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("Nothing renews soon.")
		return nil
	}

	for _, sub := range list {
		printlnFn(fmt.Sprintf("%s renews on %s for %s",
			sub.Name, sub.NextRenewal.Format(dateLayout), a.money(sub.Amount)))
	}
	return nil
}
