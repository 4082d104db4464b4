package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when a non-admin actor changes their own
	// password and the supplied old password does not match the stored one.
	ErrWrongPassword = errors.New("wrong current password")

	// ErrUnauthorized is the generic authentication failure. It deliberately
	// does not distinguish an unknown login from a wrong password to avoid
	// account enumeration.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrForbidden is returned when the acting identity is authenticated but
	// the policy denies the requested operation.
	ErrForbidden = errors.New("operation is not permitted for this account")

	// ErrInvalidYears is returned when the age filter of the older-than
	// query is not a positive integer.
	ErrInvalidYears = errors.New("years must be a positive integer")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
