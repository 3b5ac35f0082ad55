package store

import (
	"context"
	"errors"

	"github.com/inkomoko/identity/internal/identity/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a Tx facility for the one multi-entity write in the system:
// registration, which must create a user, organisation and membership as a
// single atomic unit.
type Store interface {
	Users() Users
	Organisations() Organisations
	Memberships() Memberships

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the service via ULID).
	// Returns ErrAlreadyExists when the email is already registered; the
	// UNIQUE constraint is the authoritative conflict signal.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// EmailExists is the fast-path uniqueness pre-check used to produce a
	// friendly validation error before attempting the insert.
	EmailExists(ctx context.Context, email string) (bool, error)
}

type Organisations interface {
	// CreateOrganisation inserts a new organisation (id is ULID).
	CreateOrganisation(ctx context.Context, o domain.Organisation) error

	// GetOrganisationByID returns an organisation by id.
	GetOrganisationByID(ctx context.Context, id string) (domain.Organisation, error)
}

type Memberships interface {
	// CreateMembership links a user to an organisation. Returns
	// ErrAlreadyExists when the pair is already linked. Referential
	// integrity to both sides is enforced by foreign keys.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// ListOrganisationsForUser returns the organisations a user belongs to.
	// Duplicates are impossible (composite key); order is not guaranteed.
	ListOrganisationsForUser(ctx context.Context, userID string) ([]domain.Organisation, error)
}
