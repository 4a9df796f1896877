package domain

import (
	"errors"
	"time"
)

// Item validation errors. Price and quantity must be positive
// integers; the messages are surfaced verbatim by the API.
var (
	ErrInvalidPrice    = errors.New("Price must be a positive integer")
	ErrInvalidQuantity = errors.New("Quantity must be a positive integer")
)

// ShoppingItem is a line item inside a shopping list. Items carry the
// owner id of their parent list so access checks never need a join.
// (Name, ListID) pairs are unique.
type ShoppingItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`
	Quantity  int       `json:"quantity"`
	ListID    int64     `json:"-"`
	OwnerID   int64     `json:"-"`
	CreatedAt time.Time `json:"date_created"`
	UpdatedAt time.Time `json:"date_modified"`
}

// NewShoppingItem creates a ShoppingItem in the given list after
// validating the name, price and quantity.
func NewShoppingItem(name string, price, quantity int, listID, ownerID int64) (*ShoppingItem, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if price < 1 {
		return nil, ErrInvalidPrice
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	now := time.Now().UTC()
	return &ShoppingItem{
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		ListID:    listID,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
