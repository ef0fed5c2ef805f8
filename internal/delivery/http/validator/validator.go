// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	domainerrors "pulse/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request payload validator used by the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks a bound request struct against its validate tags.
// Failures surface as the domain's validation error so the error handler
// renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, domainerrors.ErrValidationFailed.Message()).
			SetInternal(err)
	}

	return nil
}
