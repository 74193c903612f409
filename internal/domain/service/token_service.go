package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the session tokens.
type Claims struct {
	UserID   uuid.UUID
	Username string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying stateless
// session tokens. Validity is solely a function of signature and expiry;
// no server-side record exists once a token is issued.
type TokenService interface {
	// Issue creates a signed session token for the given user.
	Issue(userID uuid.UUID, username string) (string, error)

	// Verify checks the signature and expiry of a token string and
	// returns its claims. Any failure yields a single opaque error so
	// callers cannot distinguish why a token was rejected.
	Verify(tokenString string) (*Claims, error)
}
