package domain

import "errors"

// Common domain errors used across the application. The messages are
// part of the published API contract, so handlers surface them
// verbatim.
var (
	// ErrInvalidEmail is returned when an email address does not match
	// the accepted pattern.
	ErrInvalidEmail = errors.New("Please provide a valid email address")

	// ErrPasswordTooShort is returned when a password has fewer than
	// six characters. The spelling follows the original contract.
	ErrPasswordTooShort = errors.New("The password should be atleast 6 characters long")

	// ErrInvalidName is returned when a list or item name contains
	// characters outside the allowed set.
	ErrInvalidName = errors.New("No special characters allowed")

	// ErrEmptyName is returned when a required name field is blank.
	ErrEmptyName = errors.New("name cannot be empty")
)
