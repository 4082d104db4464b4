// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Failures of the Authorization header parsing done by the authentication
// middleware. All map to 401 responses.
var (
	// ErrEmptyAuthorizationHeader reports a request without an
	// Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader reports a header that has no
	// space-separated token part after the scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken reports a header whose token part is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
