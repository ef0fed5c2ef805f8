// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pulse/config"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string // Process-wide signing secret, immutable after startup.
}

// NewJWTService is the constructor for jwtService.
// The signing secret comes from configuration, loaded once at process start.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey.Token}, nil
}

// IssueToken creates a signed HS256 token asserting the given user identity.
// Tokens carry the subject and issued-at claims only; no expiry is issued,
// so a token stays valid for as long as the signing secret does.
func (s *jwtService) IssueToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),   // Subject (who the token is for)
		"iat": time.Now().Unix(), // Issued At
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("failed to sign token: " + err.Error())
	}

	return signed, nil
}

// ValidateToken checks a token's signature and returns its claims.
// Validation is purely cryptographic; there is no store lookup.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, domainerrors.ErrTokenMalformed.WrapMessage("failed to parse token structure")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token failed validation")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("unexpected claims type")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("subject claim missing")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("subject claim is not a valid user id")
	}

	return &service.Claims{UserID: userID}, nil
}
