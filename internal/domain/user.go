package domain

import (
	"regexp"
	"time"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// emailPattern is the basic email shape accepted by the service:
// a local part, a single-label check on the domain, and exactly one
// dot group. Deliberately strict so addresses like "a@b" and
// "a@b.com.com" are rejected, matching the published behavior.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+\.[A-Za-z]+$`)

// User represents a registered account. The plaintext Password field
// is only populated transiently during registration and profile
// updates; it is never persisted or serialized.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"date_created"`
	UpdatedAt      time.Time `json:"date_modified"`
}

// NewUser creates a User with the given credentials after validating
// them. The caller is responsible for hashing the password before the
// user is stored.
func NewUser(email, password string) (*User, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateEmail checks an email address against the accepted pattern.
// Returns ErrInvalidEmail when the address is empty or malformed.
func ValidateEmail(email string) error {
	if email == "" || !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the minimum password length. An empty
// password fails the same check.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
