// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks configuration paths and batch content requests
// before they reach the content reader.
//
// A [Validator] accepts a value and, optionally, the names of the fields to
// check ([FieldPath], [FieldPaths]). Without field names every rule applies.
// Rule violations are reported as the sentinel errors of this package so
// callers can match them with errors.Is.
package validators

import "context"

// Validator validates an input value. Implementations reject values of types
// they do not know with [ErrUnsupportedType].
type Validator interface {
	// Validate checks obj, restricted to fields when any are given.
	Validate(ctx context.Context, obj any, fields ...string) error
}
