package cli

import (
	"context"
	"fmt"
	"os"
)

// AddGoal creates a new savings goal.
func (a *App) AddGoal(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Goal name", os.Stdout)
	if err != nil {
		return err
	}

	targetStr, err := getSimpleText(a.reader, "Target amount", os.Stdout)
	if err != nil {
		return err
	}
	target, err := parseAmount(targetStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	deadlineStr, err := getSimpleText(a.reader, "Deadline (YYYY-MM-DD, optional)", os.Stdout)
	if err != nil {
		return err
	}
	deadline, err := parseDate(deadlineStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	g, err := a.plan.AddGoal(ctx, name, target, deadline)
	if err != nil {
		a.log.Error(ctx, "error adding goal", "error", err)
		printlnFn("Could not add goal:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Goal %q created, target %s (%s)", g.Name, a.money(g.Target), g.Id))
	return nil
}

// ListGoals prints every goal with its progress.
func (a *App) ListGoals(ctx context.Context) error {
	list, err := a.plan.ListGoals(ctx)
	if err != nil {
		a.log.Error(ctx, "error listing goals", "error", err)
		printlnFn("Could not list goals:", err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("No goals yet.")
		return nil
	}

	for _, g := range list {
		line := fmt.Sprintf("%-20s %s / %s (%s%%)  %s",
			g.Name, a.money(g.Saved), a.money(g.Target), g.Progress().StringFixed(0), g.Id)
		if g.Reached() {
			line += "  [reached]"
		} else if !g.Deadline.IsZero() {
			line += "  due " + g.Deadline.Format(dateLayout)
		}
		printlnFn(line)
	}
	return nil
}

// Contribute adds money toward a goal.
func (a *App) Contribute(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Goal id", os.Stdout)
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

	g, err := a.plan.Contribute(ctx, id, amount)
	if err != nil {
		a.log.Error(ctx, "error contributing to goal", "error", err)
		printlnFn("Could not contribute:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%q is now at %s of %s (%s%%)",
		g.Name, a.money(g.Saved), a.money(g.Target), g.Progress().StringFixed(0)))
	if g.Reached() {
		printlnFn("Goal reached, congratulations!")
	}
	return nil
}
