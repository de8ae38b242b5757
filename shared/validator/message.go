package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"email":    "{field} must be a valid email address",
	"len":      "{field} must be {param} characters long",
	"numeric":  "{field} must contain digits only",
	"phone":    "{field} must be a valid phone number",
	"apptype":  "{field} must be one of client provider",
	"gtfield":  "{field} must be after {param}",
}

// message returns the offending field and a readable message for the first
// validation error that has a template.
func message(err error) (string, string) {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return "", err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		return valErr.Field(), strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template)
	}

	return valErrors[0].Field(), valErrors.Error()
}
