// internal/utils/validation_errors.go
package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors turns a validator.ValidationErrors value into a
// field→message map suitable for a 400 response body. Any other error type
// yields a single generic entry.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrors {
			fieldName := fieldErr.Field()
			tag := fieldErr.Tag()
			errorsMap[fieldName] = fmt.Sprintf("Validation for field '%s' failed on the '%s' rule.", fieldName, tag)
		}
	} else {
		errorsMap["error"] = "Invalid input data or incorrect format."
	}

	return errorsMap
}
