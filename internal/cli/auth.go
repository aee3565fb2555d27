package cli

import (
	"context"
	"os"

	"github.com/sakshipatil0812/finance-family/internal/common"
)

// getSimpleText, getPassword, and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// SignUp prompts for a display name and password and creates the single
// household account. On success the user is immediately logged in.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is returned unchanged.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Choose a password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.auth.CreateAccount(ctx, name, password)
	if err != nil {
		a.log.Error(ctx, "sign-up failed", "error", err)
		return err
	}
	if !ok {
		printlnFn("An account already exists; use 'login'.")
		a.acct = true
		return nil
	}

	a.acct = true
	a.loggedIn = true
	a.userName = name
	printlnFn("Welcome,", name+"!")
	return nil
}

// Login prompts for the password and verifies it against the stored account.
// On success the session opens and survives restarts until 'logout'.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.auth.Verify(ctx, password)
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}
	if !ok {
		printlnFn("Wrong password.")
		return nil
	}

	name, err := a.auth.DisplayName(ctx)
	if err != nil {
		return err
	}

	a.loggedIn = true
	a.userName = name
	printlnFn("Welcome back,", name+"!")
	return nil
}

// Logout ends the persisted session. The account and all data stay in place.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.EndSession(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.loggedIn = false
	a.userName = ""
	printlnFn("Logged out.")
	return nil
}
