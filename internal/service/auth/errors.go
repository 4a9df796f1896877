package auth

import "errors"

// Common authentication service errors. Expired and invalid tokens are
// distinguished so callers can return different messages while both
// map to HTTP 401.
var (
	// ErrInvalidToken indicates the token is malformed or its
	// signature does not match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's expiry has passed.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrWrongTokenType indicates a structurally valid token was
	// presented in the wrong context, such as a reset token on a
	// protected endpoint.
	ErrWrongTokenType = errors.New("wrong token type")
)
