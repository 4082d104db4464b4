package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLogin    = errors.New("login must contain only latin letters and digits")
	ErrInvalidPassword = errors.New("password must contain only latin letters and digits")
	ErrInvalidName     = errors.New("name must contain only letters and spaces")
	ErrEmptyBatch      = errors.New("user list cannot be empty")
)
