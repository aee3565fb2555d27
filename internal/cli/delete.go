package cli

import (
	"context"
	"os"
)

// Delete removes one record by kind and id.
func (a *App) Delete(ctx context.Context) error {
	kind, err := getSimpleText(a.reader, "What to delete (expense/budget/goal/trip/sub)", os.Stdout)
	if err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Id", os.Stdout)
	if err != nil {
		return err
	}

	switch kind {
	case "expense":
		err = a.ledger.DeleteExpense(ctx, id)
	case "budget":
		err = a.ledger.DeleteBudget(ctx, id)
	case "goal":
		err = a.plan.DeleteGoal(ctx, id)
	case "trip":
		err = a.plan.DeleteTrip(ctx, id)
	case "sub":
		err = a.plan.DeleteSubscription(ctx, id)
	default:
		printlnFn("Unknown kind:", kind)
		return nil
	}

	if err != nil {
		a.log.Error(ctx, "error deleting record", "kind", kind, "id", id, "error", err)
		printlnFn("Could not delete:", err.Error())
		return err
	}

	printlnFn("Deleted.")
	return nil
}
