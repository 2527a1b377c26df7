package customrecipe

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RecipeBox_Go/internal/domain"
)

// ValidationError lists the form fields that failed validation, keyed by JSON name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[name]
	}
	return fmt.Sprintf("%s: %s", domain.ErrMsgValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateForm checks an already trimmed form
func validateForm(v *validator.Validate, form domain.RecipeForm) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Fields: map[string]string{"form": err.Error()}}
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = ValidationMsgRequired
		case "max":
			fields[fe.Field()] = fmt.Sprintf(ValidationMsgMaxFmt, fe.Param())
		default:
			fields[fe.Field()] = ValidationMsgInvalid
		}
	}
	return &ValidationError{Fields: fields}
}
