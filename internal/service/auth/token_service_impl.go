package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cmaina/shoplist-api/internal/config"
	"github.com/cmaina/shoplist-api/internal/platform/logger"
)

// Token type tags embedded in the claims so an access token can never
// pass as a reset token or vice versa.
const (
	tokenTypeAccess = "access"
	tokenTypeReset  = "reset"
)

// hmacTokenService implements TokenService using HMAC-SHA256 signing.
type hmacTokenService struct {
	signingKey         []byte
	tokenLifetime      time.Duration
	resetTokenLifetime time.Duration
	timeFunc           func() time.Time // injectable for testing
}

// tokenClaims is the JWT claims structure for both token kinds. The
// subject holds the user id (access) or email (reset).
type tokenClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService using HMAC-SHA256 signing
// with the configured secret and lifetimes.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey:         []byte(cfg.JWTSecret),
		tokenLifetime:      time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		resetTokenLifetime: time.Duration(cfg.ResetTokenLifetimeMinutes) * time.Minute,
		timeFunc:           time.Now,
	}, nil
}

// GenerateToken creates a signed access token whose subject is the
// user id.
func (s *hmacTokenService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	return s.sign(ctx, tokenTypeAccess, strconv.FormatInt(userID, 10), s.tokenLifetime)
}

// ValidateToken verifies an access token and returns the embedded
// user id.
func (s *hmacTokenService) ValidateToken(ctx context.Context, tokenString string) (int64, error) {
	claims, err := s.parse(ctx, tokenString, tokenTypeAccess)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		logger.FromContext(ctx).Debug("access token carries non-numeric subject",
			"subject", claims.Subject)
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// GenerateResetToken creates a signed reset token whose subject is the
// email address.
func (s *hmacTokenService) GenerateResetToken(ctx context.Context, email string) (string, error) {
	return s.sign(ctx, tokenTypeReset, email, s.resetTokenLifetime)
}

// ValidateResetToken verifies a reset token and returns the embedded
// email address.
func (s *hmacTokenService) ValidateResetToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parse(ctx, tokenString, tokenTypeReset)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// sign builds and signs a token of the given type.
func (s *hmacTokenService) sign(
	ctx context.Context,
	tokenType, subject string,
	lifetime time.Duration,
) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"token_type", tokenType)
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return signed, nil
}

// parse verifies signature, expiry and token type, returning the
// claims on success.
func (s *hmacTokenService) parse(
	ctx context.Context,
	tokenString, wantType string,
) (*tokenClaims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired",
				"token_type", wantType)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("token validation failed: malformed or bad signature",
				"token_type", wantType)
			return nil, ErrInvalidToken
		default:
			log.Debug("token validation failed",
				"error", err,
				"token_type", wantType)
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != wantType {
		log.Debug("token validation failed: wrong token type",
			"expected", wantType,
			"actual", claims.TokenType)
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
