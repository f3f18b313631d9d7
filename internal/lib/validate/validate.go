// Package validate checks request inputs against their `validate` struct tags
// and reports failures as models.ErrInvalidInput.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that names fields by their JSON keys.
func New() *Validator {
	vld := validator.New(validator.WithRequiredStructEnabled())
	vld.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd // name and options
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: vld}
}

// Struct validates a struct. The returned error wraps models.ErrInvalidInput and lists
// every failing field, e.g. "invalid input: firstName is required; email must be a valid email address".
func (v *Validator) Struct(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return fmt.Errorf("%w: %s", models.ErrInvalidInput, strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fieldErr.Field(), fieldErr.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag())
	}
}
