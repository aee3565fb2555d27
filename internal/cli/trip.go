package cli

import (
	"context"
	"fmt"
	"os"
)

// AddTrip records a planned trip with its estimated budget.
func (a *App) AddTrip(ctx context.Context) error {
	destination, err := getSimpleText(a.reader, "Destination", os.Stdout)
	if err != nil {
		return err
	}

	startStr, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	start, err := parseDate(startStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	endStr, err := getSimpleText(a.reader, "End date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	end, err := parseDate(endStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	budgetStr, err := getSimpleText(a.reader, "Estimated budget", os.Stdout)
	if err != nil {
		return err
	}
	budget, err := parseAmount(budgetStr)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	notes, err := getMultiline(a.reader, "Notes", os.Stdout)
	if err != nil {
		return err
	}

	trip, err := a.plan.AddTrip(ctx, destination, start, end, budget, notes)
	if err != nil {
		a.log.Error(ctx, "error adding trip", "error", err)
		printlnFn("Could not add trip:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Trip to %s planned, %d nights, budget %s (%s)",
		trip.Destination, trip.Nights(), a.money(trip.Budget), trip.Id))
	return nil
}

// ListTrips prints every planned trip ordered by start date.
func (a *App) ListTrips(ctx context.Context) error {
	list, err := a.plan.ListTrips(ctx)
	if err != nil {
		a.log.Error(ctx, "error listing trips", "error", err)
		printlnFn("Could not list trips:", err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("No trips planned.")
		return nil
	}

	for _, trip := range list {
		printlnFn(fmt.Sprintf("%s: %s to %s, %d nights, budget %s  %s",
			trip.Destination,
			trip.StartDate.Format(dateLayout), trip.EndDate.Format(dateLayout),
			trip.Nights(), a.money(trip.Budget), trip.Id))
		if trip.Notes != "" {
			printlnFn("  " + trip.Notes)
		}
	}
	return nil
}
