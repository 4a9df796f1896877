package domain

import (
	"regexp"
	"time"
)

// namePattern is the whitelist for list and item names: letters,
// digits, spaces and underscores.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9 _]+$`)

// ShoppingList is a named collection of shopping items owned by a
// single user. (Name, OwnerID) pairs are unique.
type ShoppingList struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"-"`
	CreatedAt time.Time `json:"date_created"`
	UpdatedAt time.Time `json:"date_modified"`
}

// NewShoppingList creates a ShoppingList owned by the given user after
// validating the name.
func NewShoppingList(name string, ownerID int64) (*ShoppingList, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &ShoppingList{
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateName checks a list or item name against the character
// whitelist. Returns ErrEmptyName for a blank name and ErrInvalidName
// when disallowed characters are present.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !namePattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}
