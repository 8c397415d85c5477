package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quietgrove/gatehouse/internal/domain"
	"github.com/quietgrove/gatehouse/internal/store"
	"github.com/quietgrove/gatehouse/pkg/cryptox"
	"github.com/quietgrove/gatehouse/pkg/idx"
)

var (
	// ErrEmailTaken reports a registration against an email that already has
	// an identity record.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// The two cases are deliberately indistinguishable so responses don't
	// leak which half of the credential pair failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CredentialService owns identity records: it enforces email uniqueness and
// performs one-way password hashing and verification. Nothing else mutates
// the users table.
type CredentialService struct {
	Store store.Store
}

// Register creates a new identity record. Input shape (non-empty name,
// well-formed email, password length) is the caller's problem; the email is
// normalized here before any lookup or write.
//
// The duplicate pre-check runs before hashing so a duplicate submission never
// pays the bcrypt cost. The unique index on users.email remains the authority:
// if two registrations for the same email race past the pre-check, the store
// rejects the second insert and that rejection reports as ErrEmailTaken too.
func (s *CredentialService) Register(
	ctx context.Context,
	name, email, password string,
) (domain.User, error) {
	email = domain.NormalizeEmail(email)

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, fmt.Errorf("lookup user by email: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	// Re-read so the returned record carries the store-assigned timestamps.
	created, err := s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("load created user: %w", err)
	}
	return created, nil
}

// Authenticate verifies an email/password pair and returns the matching
// identity record. Verification recomputes the bcrypt hash against the stored
// salt; it never decrypts anything.
func (s *CredentialService) Authenticate(
	ctx context.Context,
	email, password string,
) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup user by email: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("verify password: %w", err)
	}

	return user, nil
}
