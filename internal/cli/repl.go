package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	hasAccount() bool
	isLoggedIn() bool

	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	AddExpense(ctx context.Context) error
	ListExpenses(ctx context.Context) error
	SetBudget(ctx context.Context) error
	ListBudgets(ctx context.Context) error
	Report(ctx context.Context) error

	AddGoal(ctx context.Context) error
	ListGoals(ctx context.Context) error
	Contribute(ctx context.Context) error

	AddTrip(ctx context.Context) error
	ListTrips(ctx context.Context) error

	AddSubscription(ctx context.Context) error
	ListSubscriptions(ctx context.Context) error
	CancelSubscription(ctx context.Context) error
	Renewals(ctx context.Context) error

	Delete(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the famfin CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The command set depends on persisted state:
//
//	No account yet:
//	  - help           — show available commands
//	  - signup         — create the household account
//	  - exit | quit    — leave the program
//
//	Account exists, not logged in:
//	  - help           — show available commands
//	  - login          — unlock with the account password
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - spend          — record an expense
//	  - expenses       — list expenses
//	  - budget         — set a monthly category budget
//	  - budgets        — list budgets for a month
//	  - report         — month report: spending vs budgets
//	  - goal, goals    — add / list savings goals
//	  - save           — contribute toward a goal
//	  - trip, trips    — add / list trip plans
//	  - sub, subs      — add / list subscriptions
//	  - cancelsub      — cancel a subscription
//	  - renewals       — upcoming subscription renewals
//	  - delete         — delete a record by id
//	  - logout         — end the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("famfin> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printHelp(a)

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				// already handled

			case "signup":
				if a.hasAccount() {
					printlnFn("An account already exists; use 'login'.")
					continue
				}
				_ = a.SignUp(ctx)

			case "login":
				if !a.hasAccount() {
					printlnFn("No account yet; use 'signup'.")
					continue
				}
				_ = a.Login(ctx)

			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			// already handled

		case "spend":
			_ = a.AddExpense(ctx)

		case "e", "expenses":
			_ = a.ListExpenses(ctx)

		case "budget":
			_ = a.SetBudget(ctx)

		case "budgets":
			_ = a.ListBudgets(ctx)

		case "r", "report":
			_ = a.Report(ctx)

		case "goal":
			_ = a.AddGoal(ctx)

		case "goals":
			_ = a.ListGoals(ctx)

		case "save":
			_ = a.Contribute(ctx)

		case "trip":
			_ = a.AddTrip(ctx)

		case "trips":
			_ = a.ListTrips(ctx)

		case "sub":
			_ = a.AddSubscription(ctx)

		case "subs":
			_ = a.ListSubscriptions(ctx)

		case "cancelsub":
			_ = a.CancelSubscription(ctx)

		case "renewals":
			_ = a.Renewals(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	switch {
	case a.isLoggedIn():
		printlnFn("Available commands: spend, (e)xpenses, budget, budgets, (r)eport, goal, goals, save, trip, trips, sub, subs, cancelsub, renewals, delete, logout, exit")
	case a.hasAccount():
		printlnFn("Available commands: login, exit")
	default:
		printlnFn("Available commands: signup, exit")
	}
}
