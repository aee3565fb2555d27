// Package auth implements the account and session layer for the single
// household user. A credential record ({name, salt, hash}) and a session
// flag are persisted in the durable key-value store; everything else is
// derived from those two keys.
//
// The password hash is a single-pass salted SHA-256 digest with no work
// factor. That is adequate for a local single-user tool where the threat is
// casual inspection of the database file, and deliberately NOT suitable for
// any server-side or multi-tenant reuse; a real password database needs a
// KDF with a tunable cost.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sakshipatil0812/finance-family/internal/repositories/kvstore"
)

const (
	// userRecordKey holds the JSON credential record.
	userRecordKey = "user"
	// sessionFlagKey holds the literal "true" while a session is active.
	// Any other value, or absence, reads as not authenticated.
	sessionFlagKey = "session"

	sessionActive = "true"
)

// Credentials is the persisted identity and password-verification material
// for the single supported account.
type Credentials struct {
	Name string `json:"name"`
	Salt string `json:"salt"`
	Hash string `json:"hash"`
}

// Service defines account and session operations for the CLI.
//
// Contract:
//   - AccountExists: true iff a credential record is present.
//   - CreateAccount: create the single account and open a session; returns
//     false without error when an account already exists.
//   - Verify: check a password against the stored record and open a session
//     on success. A missing account and a wrong password are both plain
//     false, indistinguishable at this layer.
//   - IsAuthenticated: read the persisted session flag.
//   - EndSession: close the session, keeping the credential record.
//   - DisplayName: the stored account name, "" when no account exists.
//
// Storage faults propagate unchanged; callers treat them as fatal to the
// operation.
type Service interface {
	AccountExists(ctx context.Context) (bool, error)
	CreateAccount(ctx context.Context, displayName string, password []byte) (bool, error)
	Verify(ctx context.Context, password []byte) (bool, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	EndSession(ctx context.Context) error
	DisplayName(ctx context.Context) (string, error)
}

// service is the concrete Service backed by the local key-value store.
type service struct {
	kv kvstore.Repository
}

// NewService constructs a Service bound to the given key-value repository.
func NewService(kv kvstore.Repository) Service {
	return &service{kv: kv}
}

// AccountExists reports whether the credential record is present.
func (s *service) AccountExists(ctx context.Context) (bool, error) {
	rec, err := s.loadCredentials(ctx)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

// CreateAccount creates the single account: a fresh random salt, the salted
// digest of the password, and an open session. It returns false when a
// record already exists.
//
// The existence check and the write are not atomic; two concurrent calls
// could both pass the check. The application is single-user on a single
// device, so the window is accepted and documented rather than locked.
func (s *service) CreateAccount(ctx context.Context, displayName string, password []byte) (bool, error) {
	existing, err := s.loadCredentials(ctx)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	salt := uuid.NewString()
	rec := &Credentials{
		Name: displayName,
		Salt: salt,
		Hash: digest(password, salt),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("failed to encode credential record: %w", err)
	}
	if err := s.kv.Set(ctx, userRecordKey, data); err != nil {
		return false, err
	}
	if err := s.kv.Set(ctx, sessionFlagKey, []byte(sessionActive)); err != nil {
		return false, err
	}
	return true, nil
}

// Verify recomputes the salted digest of the candidate password and compares
// it against the stored hash in constant time. On a match the session flag
// is set; on a mismatch session state is left untouched.
func (s *service) Verify(ctx context.Context, password []byte) (bool, error) {
	rec, err := s.loadCredentials(ctx)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}

	candidate := digest(password, rec.Salt)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(rec.Hash)) == 0 {
		return false, nil
	}

	if err := s.kv.Set(ctx, sessionFlagKey, []byte(sessionActive)); err != nil {
		return false, err
	}
	return true, nil
}

// IsAuthenticated reads the persisted session flag. A flag left behind
// without a credential record reads as false: no account means no session,
// however the flag got there.
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	flag, err := s.kv.Get(ctx, sessionFlagKey)
	if err != nil {
		return false, err
	}
	if string(flag) != sessionActive {
		return false, nil
	}

	exists, err := s.AccountExists(ctx)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// EndSession clears the session flag and nothing else.
func (s *service) EndSession(ctx context.Context) error {
	return s.kv.Delete(ctx, sessionFlagKey)
}

// DisplayName returns the stored account name, or "" when no account exists.
func (s *service) DisplayName(ctx context.Context) (string, error) {
	rec, err := s.loadCredentials(ctx)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", nil
	}
	return rec.Name, nil
}

// loadCredentials reads and decodes the credential record, returning
// (nil, nil) when no account has been created yet.
func (s *service) loadCredentials(ctx context.Context) (*Credentials, error) {
	data, err := s.kv.Get(ctx, userRecordKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var rec Credentials
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode credential record: %w", err)
	}
	return &rec, nil
}

// digest computes hex(sha256(password || salt)), the stored hash format.
func digest(password []byte, salt string) string {
	input := make([]byte, 0, len(password)+len(salt))
	input = append(input, password...)
	input = append(input, salt...)
	sum := sha256.Sum256(input)
	return hex.EncodeToString(sum[:])
}
