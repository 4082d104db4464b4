// SPDX-License-Identifier: Apache-2.0

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/user_services_mock.go -package=mock

import (
	"context"

	"github.com/nmaksimov/userdir/models"
)

// DirectoryService manages the user directory itself. It is
// identity-agnostic: the caller is expected to have authorized the
// operation through PolicyService first, and actorLogin is used only
// for audit stamps.
type DirectoryService interface {
	// EnsureBootstrapAdmin creates the built-in administrator account if
	// no active account with its login exists yet.
	EnsureBootstrapAdmin(ctx context.Context) error

	// CreateUsers validates the whole batch and inserts it atomically.
	// A single invalid item or duplicate login rejects the entire batch.
	CreateUsers(ctx context.Context, request models.CreateUsersRequest, actorLogin string) ([]models.User, error)

	UpdateDetails(ctx context.Context, userID string, request models.UpdateDetailsRequest, actorLogin string) error
	UpdatePassword(ctx context.Context, userID string, newPassword string, actorLogin string) error
	UpdateLogin(ctx context.Context, userID string, request models.UpdateLoginRequest, actorLogin string) error

	ListActive(ctx context.Context) ([]models.User, error)
	GetByLogin(ctx context.Context, login string) (models.User, error)

	// OlderThan returns active users older than the given number of full
	// years. Users without a birthday are excluded.
	OlderThan(ctx context.Context, years int) ([]models.AgedUser, error)

	SoftDelete(ctx context.Context, login string, actorLogin string) (models.User, error)
	Restore(ctx context.Context, login string, actorLogin string) (models.User, error)
}

// AuthService authenticates credentials and manages session tokens.
type AuthService interface {
	// Authenticate verifies the credentials against the directory. Any
	// failure, unknown login, revoked account or wrong password, is
	// reported as ErrUnauthorized.
	Authenticate(ctx context.Context, request models.LoginRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PolicyService decides whether an acting identity may perform an
// operation. The actor is re-resolved from the directory on every call,
// so a revoked account is denied even while its token is still valid.
type PolicyService interface {
	// AuthorizeAdmin permits the operation only for active administrators.
	// A missing or revoked actor is reported as ErrForbidden, same as a
	// non-admin one.
	AuthorizeAdmin(ctx context.Context, actorLogin string) (models.User, error)

	// AuthorizeSelfOrAdmin permits administrators to target anyone and
	// ordinary users to target themselves. The target is resolved first,
	// so a missing target is reported before a policy denial.
	AuthorizeSelfOrAdmin(ctx context.Context, actorLogin string, targetUserID string) (actor models.User, target models.User, err error)

	// AuthorizePasswordChange is AuthorizeSelfOrAdmin plus the old
	// password check. Administrators skip the check even for their own
	// account.
	AuthorizePasswordChange(ctx context.Context, actorLogin string, targetUserID string, oldPassword string) (actor models.User, target models.User, err error)

	// AuthorizeSelfProfile permits an active user to read their own
	// profile by confirming both login and password against the actor.
	AuthorizeSelfProfile(ctx context.Context, actorLogin string, login string, password string) (models.User, error)
}
