package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	acct     bool
	loggedIn bool

	calls []string
}

func (f *fakeExec) hasAccount() bool { return f.acct }
func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) SignUp(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	f.acct = true
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) AddExpense(ctx context.Context) error {
	f.calls = append(f.calls, "spend")
	return nil
}
func (f *fakeExec) ListExpenses(ctx context.Context) error {
	f.calls = append(f.calls, "expenses")
	return nil
}
func (f *fakeExec) SetBudget(ctx context.Context) error {
	f.calls = append(f.calls, "budget")
	return nil
}
func (f *fakeExec) ListBudgets(ctx context.Context) error {
	f.calls = append(f.calls, "budgets")
	return nil
}
func (f *fakeExec) Report(ctx context.Context) error {
	f.calls = append(f.calls, "report")
	return nil
}
func (f *fakeExec) AddGoal(ctx context.Context) error {
	f.calls = append(f.calls, "goal")
	return nil
}
func (f *fakeExec) ListGoals(ctx context.Context) error {
	f.calls = append(f.calls, "goals")
	return nil
}
func (f *fakeExec) Contribute(ctx context.Context) error {
	f.calls = append(f.calls, "save")
	return nil
}
func (f *fakeExec) AddTrip(ctx context.Context) error {
	f.calls = append(f.calls, "trip")
	return nil
}
func (f *fakeExec) ListTrips(ctx context.Context) error {
	f.calls = append(f.calls, "trips")
	return nil
}
func (f *fakeExec) AddSubscription(ctx context.Context) error {
	f.calls = append(f.calls, "sub")
	return nil
}
func (f *fakeExec) ListSubscriptions(ctx context.Context) error {
	f.calls = append(f.calls, "subs")
	return nil
}
func (f *fakeExec) CancelSubscription(ctx context.Context) error {
	f.calls = append(f.calls, "cancelsub")
	return nil
}
func (f *fakeExec) Renewals(ctx context.Context) error {
	f.calls = append(f.calls, "renewals")
	return nil
}
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_SignupFlowAndCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login", // no account yet: refused without calling Login
		"signup",
		"help",
		"spend",
		"expenses",
		"report",
		"goals",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"signup", "spend", "expenses", "report", "goals"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	for _, c := range exec.calls {
		if c == "login" {
			t.Fatalf("Login must not be reachable before an account exists: %v", exec.calls)
		}
	}
}

func TestRunREPL_LockedScreenGatesCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"spend",  // gated
		"signup", // account exists: refused
		"login",
		"spend",
		"logout",
		"spend", // gated again after logout
		"exit",
	}, "\n"))

	exec := &fakeExec{acct: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	want := []string{"login", "spend", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("unexpected calls: %v, want %v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %q, want %q (%v)", i, exec.calls[i], c, exec.calls)
		}
	}
}

func TestRunREPL_QuitWithoutCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("\nquit\n")
	exec := &fakeExec{acct: true, loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
