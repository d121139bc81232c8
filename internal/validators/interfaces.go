// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks notes and note drafts against the structural
// rules of the note model: known type, payload fields matching the type,
// unique tag ids, and status timestamps in lockstep with the status.
//
// Validators are injected into the note store so the rules can be replaced
// in tests. Validate takes optional field names to restrict checking to a
// subset of rules.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates the provided value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
