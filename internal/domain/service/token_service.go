package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the payload carried by an issued token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying the signed,
// stateless identity assertions used by the auth gate. Verification is
// purely cryptographic; no store lookup is involved. Expiry is not part of
// the current contract, but adding it later stays inside the implementation
// and never changes callers.
type TokenService interface {
	// IssueToken creates a signed token asserting the given user identity.
	IssueToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the signature of a token string and returns its
	// claims, or an error when the token is malformed or badly signed.
	ValidateToken(tokenString string) (*Claims, error)
}
