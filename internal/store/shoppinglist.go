package store

import (
	"context"
	"database/sql"

	"github.com/cmaina/shoplist-api/internal/domain"
)

// ListStore defines the interface for shopping list persistence. All
// read and write operations are scoped to an owner id; a list that
// exists but belongs to a different user behaves as if it did not
// exist.
type ListStore interface {
	// Create saves a new list and fills in its assigned ID and
	// timestamps. Returns ErrListNameExists if the owner already has
	// a list with the same name.
	Create(ctx context.Context, list *domain.ShoppingList) error

	// GetByID retrieves a list by id, scoped to the owner.
	// Returns ErrListNotFound if absent or owned by someone else.
	GetByID(ctx context.Context, ownerID, id int64) (*domain.ShoppingList, error)

	// List returns one page of the owner's lists ordered by id, plus
	// the owner's total list count for pagination.
	List(ctx context.Context, ownerID int64, limit, offset int) ([]domain.ShoppingList, int, error)

	// Search returns the owner's lists whose name contains the term,
	// case-insensitively. An empty result is not an error.
	Search(ctx context.Context, ownerID int64, term string) ([]domain.ShoppingList, error)

	// Update renames a list. Returns ErrListNotFound if absent or not
	// owned, ErrListNameExists on a name collision.
	Update(ctx context.Context, list *domain.ShoppingList) error

	// Delete removes a list and, through the schema's cascade rules,
	// all of its items. Returns ErrListNotFound if absent or not
	// owned.
	Delete(ctx context.Context, ownerID, id int64) error

	// WithTx returns a ListStore bound to the given transaction.
	WithTx(tx *sql.Tx) ListStore
}
