package handlers

import (
	"walletboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator runs the shared rule set on bound request bodies. Failures are
// returned untouched so the central error handler can map the failing tag to a code.
type requestValidator struct {
	validate *validator.Validate
}

func NewValidator() echo.Validator {
	return &requestValidator{validate: validation.Shared()}
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
