// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer access to the user directory
// server for command-line tooling.
//
// The primary abstraction is [DirectoryClient], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPDirectoryClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/nmaksimov/userdir/models"
)

// DirectoryClient defines transport-agnostic communication with the user
// directory server. Implementations are responsible for serialisation,
// bearer-token management, and mapping transport-level errors to the
// sentinel values defined in this package.
type DirectoryClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with the server and stores the returned session
	// token via SetToken.
	Login(ctx context.Context, username, password string) (string, error)

	// CreateUsers submits an atomic batch creation request.
	CreateUsers(ctx context.Context, request models.CreateUsersRequest) (models.CreatedUsersResponse, error)

	// ListActive fetches all active accounts.
	ListActive(ctx context.Context) ([]models.UserSummary, error)

	// GetUser fetches the profile of the account with the given login,
	// including its lifecycle state.
	GetUser(ctx context.Context, login string) (models.UserProfile, error)

	// GetSelf fetches the caller's own full record after confirming the
	// credential pair.
	GetSelf(ctx context.Context, login, password string) (models.User, error)

	// OlderThan fetches active accounts older than the given number of years.
	OlderThan(ctx context.Context, years int) ([]models.AgedUser, error)

	// UpdateDetails replaces the display fields of the account with the
	// given identifier.
	UpdateDetails(ctx context.Context, userID string, request models.UpdateDetailsRequest) error

	// UpdatePassword changes the password of the account with the given
	// identifier.
	UpdatePassword(ctx context.Context, userID string, request models.UpdatePasswordRequest) error

	// UpdateLogin renames the account with the given identifier.
	UpdateLogin(ctx context.Context, userID string, request models.UpdateLoginRequest) error

	// DeleteUser soft-deletes the account with the given login.
	DeleteUser(ctx context.Context, login string) error

	// RestoreUser reactivates the soft-deleted account with the given login.
	RestoreUser(ctx context.Context, login string) error
}
