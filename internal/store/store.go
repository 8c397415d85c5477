package store

import (
	"context"
	"errors"

	"github.com/quietgrove/gatehouse/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories are exposed as methods so a second table
// later doesn't widen the root interface.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up a user by normalized email. Callers are
	// expected to have lowercased the email already.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email unique index rejects the row;
	// that rejection is the authoritative duplicate signal, the service
	// pre-check only exists to skip the hashing cost.
	CreateUser(ctx context.Context, u domain.User) error
}
