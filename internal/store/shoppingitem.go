package store

import (
	"context"
	"database/sql"

	"github.com/cmaina/shoplist-api/internal/domain"
)

// ItemStore defines the interface for shopping item persistence.
// Operations are scoped to the owner and parent list; handlers verify
// list existence and ownership before touching items.
type ItemStore interface {
	// Create saves a new item and fills in its assigned ID and
	// timestamps. Returns ErrItemNameExists if the list already has
	// an item with the same name.
	Create(ctx context.Context, item *domain.ShoppingItem) error

	// GetByID retrieves an item by id, scoped to owner and list.
	// Returns ErrItemNotFound if absent.
	GetByID(ctx context.Context, ownerID, listID, id int64) (*domain.ShoppingItem, error)

	// List returns one page of the list's items ordered by id, plus
	// the list's total item count for pagination.
	List(ctx context.Context, ownerID, listID int64, limit, offset int) ([]domain.ShoppingItem, int, error)

	// Search returns the list's items whose name contains the term,
	// case-insensitively. An empty result is not an error.
	Search(ctx context.Context, ownerID, listID int64, term string) ([]domain.ShoppingItem, error)

	// Update modifies an item's name, price and quantity.
	// Returns ErrItemNotFound if absent, ErrItemNameExists on a name
	// collision within the list.
	Update(ctx context.Context, item *domain.ShoppingItem) error

	// Delete removes an item. Returns ErrItemNotFound if absent.
	Delete(ctx context.Context, ownerID, listID, id int64) error

	// WithTx returns an ItemStore bound to the given transaction.
	WithTx(tx *sql.Tx) ItemStore
}
