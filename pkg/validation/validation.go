package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "iban-gateway/pkg/domain-errors"
	"iban-gateway/pkg/iban"
	s "iban-gateway/pkg/string"
)

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// ibancountry accepts upper-case codes of countries that issue IBANs.
	_ = v.RegisterValidation("ibancountry", func(fl validator.FieldLevel) bool {
		_, ok := iban.LookupCountry(fl.Field().String())
		return ok
	})
	// alnum_ascii rejects anything outside 0-9A-Za-z; unlike "alphanum" it
	// also accepts digits mixed with lower-case letters.
	_ = v.RegisterValidation("alnum_ascii", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !('0' <= r && r <= '9' || 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z') {
				return false
			}
		}
		return true
	})
	return v
}

// Validate validates a struct using the default validator and returns a domain error
func Validate(req any) error {
	if err := defaultValidator.Struct(req); err != nil {
		return dErrors.New(dErrors.CodeValidation, ErrorMessage(err))
	}
	return nil
}

// ErrorMessage converts a validator error into a human-readable message
func ErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid request body"
	}

	fe := validationErrs[0]
	fieldName := fe.Field()
	if fieldName == "" {
		fieldName = fe.StructField()
	}
	field := s.ToSnakeCase(fieldName)

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "ibancountry":
		return fmt.Sprintf("%s must be a supported IBAN country code", field)
	case "alnum_ascii":
		return fmt.Sprintf("%s must contain only ASCII letters and digits", field)
	default:
		if field == "" {
			return "invalid request body"
		}
		return fmt.Sprintf("%s is invalid", field)
	}
}
