// Package validator adapts go-playground/validator to echo.Validator.
package validator

import "github.com/go-playground/validator/v10"

// Validator wraps the go-playground validator for request structs.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator that reports errors by struct field name.
func New() *Validator {
	return &Validator{
		v: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (val *Validator) Validate(i any) error {
	return val.v.Struct(i)
}
