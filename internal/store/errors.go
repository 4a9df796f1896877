package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	// Entity-specific variants below wrap it so callers can match
	// either the generic or the specific error.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a
	// uniqueness constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails a database
	// constraint other than uniqueness (foreign key, check, not null).
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors.

	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
	ErrListNotFound = fmt.Errorf("%w: shopping list", ErrNotFound)
	ErrItemNotFound = fmt.Errorf("%w: shopping item", ErrNotFound)

	// Entity-specific "duplicate" errors.

	// ErrEmailExists indicates a user with the given email already
	// exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrListNameExists indicates the owner already has a list with
	// the given name.
	ErrListNameExists = fmt.Errorf("%w: list name", ErrDuplicate)

	// ErrItemNameExists indicates the list already contains an item
	// with the given name.
	ErrItemNameExists = fmt.Errorf("%w: item name", ErrDuplicate)
)

// IsNotFound reports whether err is any kind of "not found" store
// error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate reports whether err is any kind of uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
