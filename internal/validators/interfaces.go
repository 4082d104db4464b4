// SPDX-License-Identifier: Apache-2.0

// Package validators holds the input validation rules for directory
// payloads: login and password format, display name format, and the
// structural checks on batch creation requests.
//
// Services receive a [Validator] by injection and call Validate before
// touching the store, so no invalid value is ever committed.
package validators

import "context"

// Validator checks an arbitrary input value. The optional field names
// restrict validation to a subset of the value's fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
