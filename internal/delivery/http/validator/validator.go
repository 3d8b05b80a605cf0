// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Struct tag violations surface as the
// validation AppError so the centralized error handler renders a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}
