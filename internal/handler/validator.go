package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("cityname", validateCityName)
		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "cityname":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateCityName accepts letters, spaces, dots, apostrophes, hyphens and commas.
// Empty is allowed; the engine falls back to the default city.
func validateCityName(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '.', '\'', '-', ',':
			continue
		}
		return false
	}
	return true
}
