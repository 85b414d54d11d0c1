// Package validator wires go-playground/validator into echo's Validator slot.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator adapts the struct validator to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the validator used for request payloads.
func New() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Violations surface as 400s so the
// error handler does not treat them as internal failures.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
