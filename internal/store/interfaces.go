package store

import (
	"context"
	"time"

	"github.com/nmaksimov/userdir/models"
)

// UserRepository is the backing-store contract of the user directory:
// an ordered collection of account records supporting append, scan and
// in-place field updates by identifier.
//
// Every implementation must make each read-then-write sequence (uniqueness
// check before insert or rename, state check before a lifecycle toggle)
// a single atomic unit, so that two concurrent requests can never both pass
// a uniqueness check for the same login before either commits. The in-memory
// implementation serializes mutations with an exclusive lock; the SQL
// implementations rely on transactions plus a partial unique index over
// active logins.
//
// Lifecycle state handling:
//   - FindActiveByLogin / FindActiveByID / ListActive / ListActiveOlderThan
//     ignore revoked accounts entirely.
//   - FindByLogin scans all accounts in insertion order.
//   - Revoke matches only an active account; Restore matches only a revoked
//     one. Both return [ErrNoUserWasFound] when the target is absent or in
//     the wrong lifecycle state.
type UserRepository interface {
	// CreateUsers appends the given pre-validated account records as one
	// atomic batch. If any login collides with an active account, nothing is
	// inserted and [ErrLoginAlreadyExists] is returned.
	CreateUsers(ctx context.Context, users []models.User) ([]models.User, error)

	// FindActiveByLogin returns the first active account with the given
	// login, or [ErrNoUserWasFound].
	FindActiveByLogin(ctx context.Context, login string) (models.User, error)

	// FindByLogin returns the first account with the given login including
	// revoked ones, or [ErrNoUserWasFound].
	FindByLogin(ctx context.Context, login string) (models.User, error)

	// FindActiveByID returns the active account with the given identifier,
	// or [ErrNoUserWasFound] when it is absent or revoked.
	FindActiveByID(ctx context.Context, id string) (models.User, error)

	// ListActive returns all active accounts ordered by ascending CreatedAt.
	ListActive(ctx context.Context) ([]models.User, error)

	// ListActiveOlderThan returns active accounts whose birthday is set and
	// strictly before the given threshold, ordered by ascending CreatedAt.
	ListActiveOlderThan(ctx context.Context, threshold time.Time) ([]models.User, error)

	// UpdateDetails overwrites the display fields of the active account with
	// the given identifier and records the audit stamp.
	UpdateDetails(ctx context.Context, id string, details models.UpdateDetailsRequest, stamp models.AuditStamp) error

	// UpdatePassword overwrites the stored password of the active account
	// with the given identifier and records the audit stamp.
	UpdatePassword(ctx context.Context, id string, newPassword string, stamp models.AuditStamp) error

	// UpdateLogin renames the active account with the given identifier.
	// Returns [ErrLoginAlreadyExists] when another active account already
	// holds newLogin.
	UpdateLogin(ctx context.Context, id string, newLogin string, stamp models.AuditStamp) error

	// Revoke soft-deletes the active account with the given login: the
	// revocation pair is set from the stamp and the audit fields updated.
	Revoke(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error)

	// Restore reactivates the revoked account with the given login: the
	// revocation pair is cleared and the audit fields updated. Returns
	// [ErrLoginAlreadyExists] when a newer active account has taken the login.
	Restore(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error)
}
