package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid address", "test@gmail.com", false},
		{"valid with plus tag", "chris+lists@example.org", false},
		{"empty", "", true},
		{"missing domain dot", "mainachris@gmail", true},
		{"double dot group", "test@gmail.com.com", true},
		{"missing local part", "@gmail.com", true},
		{"whitespace in local part", "a b@gmail.com", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEmail(tc.email)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("secret1"))
	assert.ErrorIs(t, ValidatePassword(""), ErrPasswordTooShort)
	assert.ErrorIs(t, ValidatePassword("pass"), ErrPasswordTooShort)
	assert.NoError(t, ValidatePassword("123456"))
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"plain", "Groceries", nil},
		{"spaces and digits", "Back to school 2017", nil},
		{"underscores", "week_1", nil},
		{"empty", "", ErrEmptyName},
		{"plus sign", "Jeep+", ErrInvalidName},
		{"exclamation", "Bread!", ErrInvalidName},
		{"unicode", "liste à puces", ErrInvalidName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateName(tc.value)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	u, err := NewUser("a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)
	assert.Equal(t, "secret1", u.Password)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = NewUser("a@b", "secret1")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewUser("a@b.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestNewShoppingItem(t *testing.T) {
	t.Parallel()

	item, err := NewShoppingItem("Bread", 50, 2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 50, item.Price)
	assert.Equal(t, 2, item.Quantity)

	_, err = NewShoppingItem("Bread", 0, 2, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewShoppingItem("Bread", 50, -1, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewShoppingItem("Bread!", 50, 1, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidName)
}
