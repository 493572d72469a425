package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/feistel/pkg/roundfunc"
)

// register adds the custom validations with human-readable messages
// and reports fields by their flag label.
func register(validate *validator.Validator) error {
	if err := validate.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive with {1}",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	if err := validate.RegisterValidationAndTranslation(
		"roundfunc",
		validateRoundFunc,
		"{0} must name a round function, see the functions command",
	); err != nil {
		return fmt.Errorf("registering roundfunc validation: %w", err)
	}

	validate.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}

// validateRoundFunc checks that the field names a registered round function.
func validateRoundFunc(fl validator.FieldLevel) bool {
	_, err := roundfunc.ByName(fl.Field().String())

	return err == nil
}
