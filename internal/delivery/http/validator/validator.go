// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	domainerrors "identity/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var personNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ'-]+$`)

// CustomValidator validates request DTOs by their `validate` struct tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator with the personname and strongpassword rules registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so messages match the request body.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	mustRegister(v, "personname", isPersonName)
	mustRegister(v, "strongpassword", isStrongPassword)

	return &CustomValidator{validate: v}
}

// mustRegister panics when a rule cannot be registered.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(errors.Wrapf(err, "register validation %q", tag))
	}
}

// Validate implements echo.Validator. Failures are reported as ErrValidationFailed
// with one message per offending field in the details.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "email":
		return field + " has an invalid email format"
	case "personname":
		return field + " can only contain letters, hyphens, and apostrophes"
	case "strongpassword":
		return field + " must contain an uppercase letter, a lowercase letter, a digit, and a special character"
	default:
		return field + " failed the " + fe.Tag() + " rule"
	}
}

func isPersonName(fl validator.FieldLevel) bool {
	return personNamePattern.MatchString(fl.Field().String())
}

func isStrongPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case r == '_' || !(unicode.IsLetter(r) || unicode.IsDigit(r)):
			special = true
		}
	}

	return upper && lower && digit && special
}
