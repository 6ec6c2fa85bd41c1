package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return NewValidationError(err.(validator.ValidationErrors))
	}
	return nil
}

// ValidationError represents a validation error with user-friendly messages
type ValidationError struct {
	Errors  map[string]string `json:"errors"`
	Missing []string          `json:"missing_fields,omitempty"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	var messages []string
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(messages)
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// MissingFields returns the JSON names of required fields that were absent.
func (e *ValidationError) MissingFields() []string {
	return e.Missing
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	fieldErrors := make(map[string]string)
	var missing []string

	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()

		switch tag {
		case "required":
			fieldErrors[field] = fmt.Sprintf("%s is required", field)
			missing = append(missing, field)
		case "min":
			fieldErrors[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			fieldErrors[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "plan":
			fieldErrors[field] = fmt.Sprintf("%s must be a known subscription plan", field)
		case "billing_cycle":
			fieldErrors[field] = fmt.Sprintf("%s must be monthly, annual or six_month", field)
		default:
			fieldErrors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	sort.Strings(missing)
	return &ValidationError{Errors: fieldErrors, Missing: missing}
}

// registerCustomValidators registers custom validation rules
func registerCustomValidators(validate *validator.Validate) {
	// Plan validation: known subscription plans only
	validate.RegisterValidation("plan", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "free", "professional", "enterprise":
			return true
		}
		return false
	})

	// Billing cycle validation
	validate.RegisterValidation("billing_cycle", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "monthly", "annual", "six_month":
			return true
		}
		return false
	})

	// Founding date: YYYY-MM-DD when present
	dateRe := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	validate.RegisterValidation("founding_date", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || dateRe.MatchString(value)
	})
}
