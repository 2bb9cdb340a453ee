// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

type structValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the echo server.
func New() *structValidator {
	return &structValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *structValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
