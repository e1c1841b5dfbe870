// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the forms accepted by the hub before the
// services act on them: registration, login, password change, profile
// updates, posts and comments.
//
// A validator is told which rules to apply through field names
// (FieldEmail, FieldPostBody, ...). With no names every rule of the form is
// checked. An unknown name yields [ErrUnknownField].
package validators

import "context"

// Validator checks obj against the rules selected by fields. It returns
// [ErrUnsupportedType] when obj is not a form it knows.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
