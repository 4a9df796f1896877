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

// ListStore implements store.ListStore on PostgreSQL.
type ListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewListStore creates a PostgreSQL-backed ListStore. The database
// handle is owned by the caller. If log is nil the default logger is
// used.
func NewListStore(db store.DBTX, log *slog.Logger) *ListStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ListStore{
		db:     db,
		logger: log.With(slog.String("component", "list_store")),
	}
}

var _ store.ListStore = (*ListStore)(nil)

// Create implements store.ListStore.Create.
func (s *ListStore) Create(ctx context.Context, list *domain.ShoppingList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO shoppinglists (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, list.Name, list.OwnerID).
		Scan(&list.ID, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return mapUniqueViolation(err, store.ErrListNameExists)
		}
		log.Error("failed to create shopping list",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", list.OwnerID))
		return MapError(err)
	}

	log.Info("shopping list created",
		slog.Int64("list_id", list.ID),
		slog.Int64("owner_id", list.OwnerID))
	return nil
}

// GetByID implements store.ListStore.GetByID.
func (s *ListStore) GetByID(ctx context.Context, ownerID, id int64) (*domain.ShoppingList, error) {
	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM shoppinglists
		WHERE id = $1 AND owner_id = $2
	`
	var list domain.ShoppingList
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&list.ID,
		&list.Name,
		&list.OwnerID,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrListNotFound
		}
		return nil, MapError(err)
	}
	return &list, nil
}

// List implements store.ListStore.List.
func (s *ListStore) List(
	ctx context.Context,
	ownerID int64,
	limit, offset int,
) ([]domain.ShoppingList, int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shoppinglists WHERE owner_id = $1`, ownerID).
		Scan(&total)
	if err != nil {
		return nil, 0, MapError(err)
	}

	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM shoppinglists
		WHERE owner_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	rows, err := s.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	lists := []domain.ShoppingList{}
	for rows.Next() {
		var list domain.ShoppingList
		if err := rows.Scan(
			&list.ID,
			&list.Name,
			&list.OwnerID,
			&list.CreatedAt,
			&list.UpdatedAt,
		); err != nil {
			return nil, 0, MapError(err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return lists, total, nil
}

// Search implements store.ListStore.Search using a case-insensitive
// substring match on the name.
func (s *ListStore) Search(
	ctx context.Context,
	ownerID int64,
	term string,
) ([]domain.ShoppingList, error) {
	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM shoppinglists
		WHERE owner_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, ownerID, term)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	lists := []domain.ShoppingList{}
	for rows.Next() {
		var list domain.ShoppingList
		if err := rows.Scan(
			&list.ID,
			&list.Name,
			&list.OwnerID,
			&list.CreatedAt,
			&list.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return lists, nil
}

// Update implements store.ListStore.Update.
func (s *ListStore) Update(ctx context.Context, list *domain.ShoppingList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE shoppinglists
		SET name = $1, updated_at = now()
		WHERE id = $2 AND owner_id = $3
		RETURNING updated_at
	`
	err := s.db.QueryRowContext(ctx, query, list.Name, list.ID, list.OwnerID).
		Scan(&list.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrListNotFound
		}
		if IsUniqueViolation(err) {
			return mapUniqueViolation(err, store.ErrListNameExists)
		}
		log.Error("failed to update shopping list",
			slog.String("error", err.Error()),
			slog.Int64("list_id", list.ID))
		return MapError(err)
	}

	return nil
}

// Delete implements store.ListStore.Delete. Items in the list are
// removed by the schema's cascade rules.
func (s *ListStore) Delete(ctx context.Context, ownerID, id int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM shoppinglists WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return MapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrListNotFound
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("shopping list deleted",
		slog.Int64("list_id", id),
		slog.Int64("owner_id", ownerID))
	return nil
}

// WithTx implements store.ListStore.WithTx.
func (s *ListStore) WithTx(tx *sql.Tx) store.ListStore {
	return &ListStore{db: tx, logger: s.logger}
}
