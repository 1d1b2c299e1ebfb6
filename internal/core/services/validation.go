package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = f.Name
		}
		return snakeCase(name)
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// validateStruct reports the first failed check on v as a *ValidationError
// named after the backend field. A nil v passes.
func validateStruct(v any) error {
	return firstFailure(v, false)
}

// validatePatch is validateStruct with "required" checks ignored, for partial
// updates where an empty field means "leave unchanged".
func validatePatch(v any) error {
	return firstFailure(v, true)
}

func firstFailure(v any, partial bool) error {
	if v == nil {
		return nil
	}
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}
	for _, fe := range fieldErrs {
		if partial && fe.Tag() == "required" {
			continue
		}
		return apperrors.NewValidationError(fe.Field(), reason(fe))
	}
	return nil
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "is invalid"
}

// snakeCase turns a Go-style json name into the backend spelling:
// nameEn -> name_en, domainURL -> domain_url.
func snakeCase(s string) string {
	var b strings.Builder
	prevUpper := true
	for _, r := range s {
		upper := unicode.IsUpper(r)
		if upper && !prevUpper {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
		prevUpper = upper
	}
	return b.String()
}
