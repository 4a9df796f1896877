package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/cmaina/shoplist-api/internal/domain"
	"github.com/cmaina/shoplist-api/internal/platform/logger"
	"github.com/cmaina/shoplist-api/internal/store"
)

// ItemStore implements store.ItemStore on PostgreSQL.
type ItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewItemStore creates a PostgreSQL-backed ItemStore. The database
// handle is owned by the caller. If log is nil the default logger is
// used.
func NewItemStore(db store.DBTX, log *slog.Logger) *ItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ItemStore{
		db:     db,
		logger: log.With(slog.String("component", "item_store")),
	}
}

var _ store.ItemStore = (*ItemStore)(nil)

// Create implements store.ItemStore.Create.
func (s *ItemStore) Create(ctx context.Context, item *domain.ShoppingItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO shoppingitems (name, price, quantity, list_id, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query,
		item.Name, item.Price, item.Quantity, item.ListID, item.OwnerID).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return mapUniqueViolation(err, store.ErrItemNameExists)
		}
		log.Error("failed to create shopping item",
			slog.String("error", err.Error()),
			slog.Int64("list_id", item.ListID))
		return MapError(err)
	}

	log.Info("shopping item created",
		slog.Int64("item_id", item.ID),
		slog.Int64("list_id", item.ListID))
	return nil
}

// GetByID implements store.ItemStore.GetByID.
func (s *ItemStore) GetByID(
	ctx context.Context,
	ownerID, listID, id int64,
) (*domain.ShoppingItem, error) {
	query := `
		SELECT id, name, price, quantity, list_id, owner_id, created_at, updated_at
		FROM shoppingitems
		WHERE id = $1 AND list_id = $2 AND owner_id = $3
	`
	var item domain.ShoppingItem
	err := s.db.QueryRowContext(ctx, query, id, listID, ownerID).Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Quantity,
		&item.ListID,
		&item.OwnerID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrItemNotFound
		}
		return nil, MapError(err)
	}
	return &item, nil
}

// List implements store.ItemStore.List.
func (s *ItemStore) List(
	ctx context.Context,
	ownerID, listID int64,
	limit, offset int,
) ([]domain.ShoppingItem, int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shoppingitems WHERE list_id = $1 AND owner_id = $2`,
		listID, ownerID).
		Scan(&total)
	if err != nil {
		return nil, 0, MapError(err)
	}

	query := `
		SELECT id, name, price, quantity, list_id, owner_id, created_at, updated_at
		FROM shoppingitems
		WHERE list_id = $1 AND owner_id = $2
		ORDER BY id
		LIMIT $3 OFFSET $4
	`
	rows, err := s.db.QueryContext(ctx, query, listID, ownerID, limit, offset)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.ShoppingItem{}
	for rows.Next() {
		var item domain.ShoppingItem
		if err := scanItem(rows, &item); err != nil {
			return nil, 0, MapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return items, total, nil
}

// Search implements store.ItemStore.Search using a case-insensitive
// substring match on the name.
func (s *ItemStore) Search(
	ctx context.Context,
	ownerID, listID int64,
	term string,
) ([]domain.ShoppingItem, error) {
	query := `
		SELECT id, name, price, quantity, list_id, owner_id, created_at, updated_at
		FROM shoppingitems
		WHERE list_id = $1 AND owner_id = $2 AND name ILIKE '%' || $3 || '%'
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, listID, ownerID, term)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.ShoppingItem{}
	for rows.Next() {
		var item domain.ShoppingItem
		if err := scanItem(rows, &item); err != nil {
			return nil, MapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// Update implements store.ItemStore.Update.
func (s *ItemStore) Update(ctx context.Context, item *domain.ShoppingItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE shoppingitems
		SET name = $1, price = $2, quantity = $3, updated_at = now()
		WHERE id = $4 AND list_id = $5 AND owner_id = $6
		RETURNING updated_at
	`
	err := s.db.QueryRowContext(ctx, query,
		item.Name, item.Price, item.Quantity, item.ID, item.ListID, item.OwnerID).
		Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrItemNotFound
		}
		if IsUniqueViolation(err) {
			return mapUniqueViolation(err, store.ErrItemNameExists)
		}
		log.Error("failed to update shopping item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", item.ID))
		return MapError(err)
	}

	return nil
}

// Delete implements store.ItemStore.Delete.
func (s *ItemStore) Delete(ctx context.Context, ownerID, listID, id int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM shoppingitems WHERE id = $1 AND list_id = $2 AND owner_id = $3`,
		id, listID, ownerID)
	if err != nil {
		return MapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrItemNotFound
	}
	return nil
}

// WithTx implements store.ItemStore.WithTx.
func (s *ItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	return &ItemStore{db: tx, logger: s.logger}
}

// scanItem scans one shoppingitems row in column order.
func scanItem(rows *sql.Rows, item *domain.ShoppingItem) error {
	return rows.Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Quantity,
		&item.ListID,
		&item.OwnerID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
