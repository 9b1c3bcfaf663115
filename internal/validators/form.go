package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ruleOrder ranks validate tags. When several rules fail at once the one
// listed first is reported.
var ruleOrder = []struct {
	tag string
	err error
}{
	{tag: "required", err: ErrRequired},
	{tag: "eqfield", err: ErrMismatch},
	{tag: "min", err: ErrTooShort},
}

type formValidator struct {
	validate *validator.Validate
}

// NewFormValidator returns a [Validator] backed by go-playground/validator.
// Only structs (or pointers to structs) are accepted.
func NewFormValidator() Validator {
	return &formValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks v against its validate tags. When fields are given only
// those fields are checked. The returned error wraps exactly one of
// ErrRequired, ErrMismatch, ErrTooShort or ErrInvalidValue and names the
// offending fields.
func (f *formValidator) Validate(ctx context.Context, v any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = f.validate.StructPartialCtx(ctx, v, fields...)
	} else {
		err = f.validate.StructCtx(ctx, v)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalid.Error())
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	for _, rule := range ruleOrder {
		if names := failingFields(fieldErrors, rule.tag); len(names) > 0 {
			return fmt.Errorf("%w: %s", rule.err, strings.Join(names, ", "))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(failingFields(fieldErrors, ""), ", "))
}

// failingFields lists the fields failing tag, or every failing field when
// tag is empty.
func failingFields(fieldErrors validator.ValidationErrors, tag string) []string {
	var names []string
	for _, fe := range fieldErrors {
		if tag == "" || fe.Tag() == tag {
			names = append(names, fe.Field())
		}
	}
	return names
}
