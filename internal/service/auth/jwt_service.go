// Package auth provides JWT issuance/validation and password hashing for
// the API. A learner's token carries only their user ID, which keys their
// progress record.
package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common authentication errors
var (
	// ErrInvalidToken is returned when a token is malformed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrInvalidCredentials is returned when an email/password pair does
	// not match a registered user.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Claims are the validated contents of an access token.
type Claims struct {
	UserID uuid.UUID
}

// JWTService defines the interface for token generation and validation.
type JWTService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies a token and returns its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
