// Package common defines shared constants, sentinel errors, and small
// utilities used across the application layers. Callers should use errors.Is
// to match sentinel values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorAlreadyExists = errors.New("already exists")

	// Validation errors.
	ErrorValidation       = errors.New("validation error")
	ErrorNegativeAmount   = errors.New("amount must not be negative")
	ErrorCurrencyMismatch = errors.New("currency mismatch")
)
