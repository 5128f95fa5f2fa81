// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	"strings"

	domainerrors "vetclinic/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate runs struct validation and maps the first failure to a
// field-level validation error so the error handler renders it as 422.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrs); ok && len(fieldErrs) > 0 {
		first := fieldErrs[0]

		return domainerrors.NewValidationError(
			strings.ToLower(first.Field()),
			"El campo '"+strings.ToLower(first.Field())+"' no cumple la regla '"+first.Tag()+"'",
		)
	}

	return domainerrors.NewValidationError("body", err.Error())
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = fieldErrs

	return true
}
