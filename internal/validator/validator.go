// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request structs.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a validator.Validate instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a CustomValidator ready to assign to echo.Echo.Validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks struct tags and converts failures into a 400 response
// carrying the field-level detail from the validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
