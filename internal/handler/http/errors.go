// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecordForm is wrapped by [*RecordFieldError] when a submitted
	// climate record field is missing or not a number or date.
	ErrInvalidRecordForm = errors.New("invalid climate record form")

	// ErrInvalidRecordID is returned when the {id} path segment is not an
	// integer.
	ErrInvalidRecordID = errors.New("invalid record id")
)

// RecordFieldError names the form field that failed to parse.
type RecordFieldError struct {
	Field string
}

func (e *RecordFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidRecordForm, e.Field)
}

func (e *RecordFieldError) Unwrap() error {
	return ErrInvalidRecordForm
}
