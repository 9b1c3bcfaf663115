// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks submitted forms against the rules declared in
// their validate struct tags.
//
// A failing rule is reported as one of the sentinel errors of this package,
// so callers can map it to a user-facing message with errors.Is without
// depending on the underlying validation library.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
