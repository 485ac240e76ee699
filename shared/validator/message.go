package validator

import (
	"errors"
	"net/http"
	"strings"

	"resort/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const detailsFields = "fields"

var templates = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be at least {param}",
	"max":      "{field} must be at most {param}",
	"oneof":    "{field} must be one of [{param}]",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"datetime": "{field} must match the layout {param}",
	"nefield":  "{field} must differ from {param}",
	"gtfield":  "{field} must be after {param}",
	"enum":     "{field} has an unknown value",
}

func describe(fieldErr val.FieldError) string {
	tmpl, ok := templates[fieldErr.Tag()]
	if !ok {
		return fieldErr.Field() + " is invalid"
	}

	return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(tmpl)
}

// toFailure reports the first broken rule as the message and every broken field under details.
func toFailure(err error) error {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return failure.Validation(err.Error()) //nolint:wrapcheck
	}

	fields := make(map[string]any, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		if _, seen := fields[fieldErr.Field()]; !seen {
			fields[fieldErr.Field()] = describe(fieldErr)
		}
	}

	return &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: describe(fieldErrs[0]),
		Kind:    failure.KindValidation,
		Details: map[string]any{detailsFields: fields},
	}
}
