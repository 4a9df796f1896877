package api

import (
	"encoding/json"
	"strings"

	"github.com/cmaina/shoplist-api/internal/domain"
)

// StringOrNumber accepts a JSON field that clients send either as a
// string ("50") or a number (50) and keeps its textual form so the
// handlers can distinguish "missing", "non-numeric" and "non-positive"
// with field-specific messages.
type StringOrNumber string

// UnmarshalJSON implements json.Unmarshaler.
func (v *StringOrNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringOrNumber(s)
		return nil
	}
	*v = StringOrNumber(strings.TrimSpace(string(data)))
	return nil
}

// String returns the textual form of the value.
func (v StringOrNumber) String() string { return string(v) }

// RegisterRequest is the payload for POST /auth/register/.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success body for POST /auth/login/.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

// MessageResponse is the generic `{"message": ...}` success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileResponse is the body for GET /user.
type ProfileResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// UpdateProfileRequest is the payload for PUT /user. Empty fields are
// left unchanged.
type UpdateProfileRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequest is the payload for POST /user/reset.
type ResetRequest struct {
	Email string `json:"email"`
}

// ResetTokenResponse is the success body for POST /user/reset. The
// token is returned directly to the caller; there is no out-of-band
// delivery.
type ResetTokenResponse struct {
	ResetToken string `json:"reset_token"`
	Message    string `json:"message"`
}

// ResetPasswordRequest is the payload for
// PUT /user/reset/password/{token}.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ListRequest is the payload for creating or renaming a shopping
// list.
type ListRequest struct {
	Name string `json:"name"`
}

// ListPageResponse is the paginated body for GET /shoppinglists/.
// The page link fields hold a URL string or the literal "None". The
// key spellings are part of the published contract.
type ListPageResponse struct {
	Lists        []domain.ShoppingList `json:"shopping lists"`
	PreviousPage string                `json:"previous page"`
	NextPage     string                `json:"next page"`
}

// CreateItemRequest is the payload for creating a shopping item.
type CreateItemRequest struct {
	Name     string         `json:"name"`
	Price    StringOrNumber `json:"price"`
	Quantity StringOrNumber `json:"quantity"`
}

// UpdateItemRequest is the payload for editing a shopping item. Empty
// fields fall back to the item's current values.
type UpdateItemRequest struct {
	Name     string         `json:"name"`
	Price    StringOrNumber `json:"price"`
	Quantity StringOrNumber `json:"quantity"`
}

// ItemPageResponse is the paginated body for
// GET /shoppinglists/{id}/items.
type ItemPageResponse struct {
	Items        []domain.ShoppingItem `json:"shopping items"`
	PreviousPage string                `json:"previous page"`
	NextPage     string                `json:"next page"`
}
