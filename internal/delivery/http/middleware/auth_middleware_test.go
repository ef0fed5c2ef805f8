package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"
	mocksvc "pulse/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func invokeAuthenticate(t *testing.T, tokenSvc *mocksvc.MockTokenService, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/feed", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var handlerRan bool
	var resolvedID uuid.UUID
	next := func(c echo.Context) error {
		handlerRan = true
		if id, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
			resolvedID = id
		}

		return c.NoContent(http.StatusOK)
	}

	err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)
	assert.NoError(t, err)

	return rec, handlerRan, resolvedID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mocksvc.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "good-token").Return(&service.Claims{UserID: userID}, nil)

	rec, handlerRan, resolvedID := invokeAuthenticate(t, tokenSvc, "Bearer good-token")

	assert.True(t, handlerRan)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, resolvedID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mocksvc.NewMockTokenService(t)

	rec, handlerRan, _ := invokeAuthenticate(t, tokenSvc, "")

	// Rejection happens before the handler, so no handler logic runs.
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenSvc.AssertNotCalled(t, "ValidateToken", "")
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	tokenSvc := mocksvc.NewMockTokenService(t)

	rec, handlerRan, _ := invokeAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mocksvc.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "bad-token").
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("signature mismatch"))

	rec, handlerRan, _ := invokeAuthenticate(t, tokenSvc, "Bearer bad-token")

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}
