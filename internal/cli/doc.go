// Package cli provides the interactive famfin command-line application.
//
// It wires configuration, the local database, and the application services
// into a REPL with three screens driven by persisted account and session
// state:
//
//   - no account yet: the sign-up screen (signup, exit)
//   - account exists, no session: the login screen (login, exit)
//   - session active: the full command set (expenses, budgets, reports,
//     goals, trips, subscriptions, logout)
//
// The session survives restarts: closing the program while logged in brings
// the user straight back to the full command set on the next run.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
