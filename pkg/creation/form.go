package creation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"tableflip.dev/maplog/pkg/entry"
)

// Form is the submitted content of the entry form. Numeric fields arrive as
// the raw text the user typed.
type Form struct {
	Variant  string `validate:"required,oneof=Finished Pending"`
	Title    string
	Location string
	// Tag is an identifying number; it must be finite.
	Tag string `validate:"required,finite"`
	// Elevation is optional. When given it is an effort figure and must be
	// finite and strictly positive.
	Elevation string `validate:"omitempty,finite,positive"`
}

// FieldError describes one rejected form field.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

// ValidationError rejects a form submission. The controller stays in
// AwaitingInput when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", strings.ToLower(f.Field), f.Reason))
	}
	return "creation: invalid input: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		_, ok := parseFinite(fieldString(fl))
		return ok
	})
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		n, ok := parseFinite(fieldString(fl))
		return ok && n > 0
	})
	return v
}

func fieldString(fl validator.FieldLevel) string {
	if fl.Field().Kind() != reflect.String {
		return ""
	}
	return strings.TrimSpace(fl.Field().String())
}

// parseFinite accepts decimal numbers only; NaN and infinities are rejected.
func parseFinite(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Validate checks the form and returns the parsed variant. Surrounding
// whitespace in the variant is ignored.
func (f Form) Validate() (entry.Variant, error) {
	f.Variant = strings.TrimSpace(f.Variant)
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return "", err
		}
		out := &ValidationError{}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:  fe.Field(),
				Value:  fmt.Sprint(fe.Value()),
				Reason: reason(fe.Tag()),
			})
		}
		return "", out
	}
	return entry.ParseVariant(f.Variant)
}

func reason(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "oneof":
		return "must be Finished or Pending"
	case "finite":
		return "must be a finite number"
	case "positive":
		return "must be a positive number"
	default:
		return "failed " + tag
	}
}
