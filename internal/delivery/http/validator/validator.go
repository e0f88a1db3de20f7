// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	pgvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// EchoValidator wraps a validator.Validate instance for echo.
type EchoValidator struct {
	validator *pgvalidator.Validate
}

// New creates a new EchoValidator.
func New() *EchoValidator {
	return &EchoValidator{
		validator: pgvalidator.New(pgvalidator.WithRequiredStructEnabled()),
	}
}

// Validate validates the given struct and converts failures to 400 responses.
// The validator error stays reachable through the HTTPError's Internal so
// handlers can map individual field failures to domain errors.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	return nil
}
