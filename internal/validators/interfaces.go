// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request values before services act on them.
//
// A Validator accepts any value it knows and an optional list of field
// names; with no fields every rule for that type runs. Services receive
// validators by injection so transport and storage stay free of input
// rules.
package validators

import "context"

// Validator validates obj, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
