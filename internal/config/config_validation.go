// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallbacks applied by applyDefaults when the merged configuration leaves
// a field unset.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultTokenIssuer    = "userdir"
	DefaultTokenDuration  = 30 * time.Minute
	DefaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills zero-valued fields of the merged configuration with
// their documented fallbacks. The token validity window in particular
// defaults to 30 minutes.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN != "" && cfg.Storage.DB.SQLitePath != "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
