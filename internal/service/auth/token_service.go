// Package auth provides token issuance and password hashing for the
// shopping list service.
package auth

import "context"

// TokenService defines operations for issuing and verifying the two
// token kinds the API uses: access tokens binding a user id and reset
// tokens binding an email address. Both are stateless; there is no
// revocation list.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies an access token and returns the embedded
	// user id. Returns ErrExpiredToken when the token has expired,
	// ErrInvalidToken for malformed tokens or bad signatures, and
	// ErrWrongTokenType when a non-access token is presented.
	ValidateToken(ctx context.Context, tokenString string) (int64, error)

	// GenerateResetToken creates a signed password-reset token for the
	// given email address.
	GenerateResetToken(ctx context.Context, email string) (string, error)

	// ValidateResetToken verifies a reset token and returns the
	// embedded email address. Error semantics match ValidateToken.
	ValidateResetToken(ctx context.Context, tokenString string) (string, error)
}
