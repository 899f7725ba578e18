package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	UserID   uuid.UUID
	Username string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating identity tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed, self-contained token embedding the
	// user's id and username, expiring a fixed interval after issuance.
	GenerateToken(userID uuid.UUID, username string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	// It fails if the signature is invalid, the token is malformed, or it has expired.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
