// package validation provides helper functions for request data validation.
// It uses the go-playground/validator library and includes custom rules.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// init registers custom validation rules with the validator instance.
func init() {
	// "blood_group" accepts the eight ABO/Rh groups: A+, A-, B+, B-,
	// AB+, AB-, O+, O-. Empty values are left to the 'required' tag.
	err := validate.RegisterValidation("blood_group", func(fl validator.FieldLevel) bool {
		if fl.Field().String() == "" {
			return true
		}

		re := regexp.MustCompile(`^(A|B|AB|O)[+-]$`)

		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register custom validation: %v", err))
	}
}

// ValidationError holds a slice of per-field validation error messages.
type ValidationError struct {
	Errors []string
}

// Error returns a single string concatenating all validation error messages.
func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, ", ")
}

// ValidateStruct performs validation on a struct based on its validation tags.
// If validation fails, it returns a *ValidationError with user-friendly messages.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var validationErrors []string

		for _, err := range err.(validator.ValidationErrors) {
			var message string

			switch err.Tag() {
			case "blood_group":
				message = fmt.Sprintf(
					"field '%s' must be a valid blood group such as A+ or O-",
					err.Field(),
				)
			default:
				message = fmt.Sprintf(
					"field '%s' failed on the '%s' tag",
					err.Field(),
					err.Tag(),
				)
			}
			validationErrors = append(validationErrors, message)
		}

		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
