package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrRequired     = errors.New("required field is empty")
	ErrMismatch     = errors.New("fields do not match")
	ErrTooShort     = errors.New("value is too short")
	ErrInvalidValue = errors.New("invalid value")
)
