package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or contradictory.
var (
	// ErrInvalidAuthConfigs indicates missing token-issuing settings
	// (the token sign key is required).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates contradictory storage settings
	// (a PostgreSQL DSN and a SQLite path cannot both be set).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
