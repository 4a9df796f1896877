package store

import (
	"context"
	"database/sql"

	"github.com/cmaina/shoplist-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user and fills in its assigned ID and
	// timestamps. The user must already carry a hashed password.
	// Returns ErrEmailExists if the email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if no such user exists.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user's email and hashed password.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists when changing to an email that is already taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user. Lists and items owned by the user are
	// removed by the schema's cascade rules.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}
