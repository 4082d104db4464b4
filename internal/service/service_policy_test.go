// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/internal/store"
	"github.com/nmaksimov/userdir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPolicyService(repo *mockUserRepository) PolicyService {
	return NewPolicyService(repo, logger.Nop())
}

// directoryOf builds a mock that resolves actors by login and targets by ID
// from the given fixed accounts.
func directoryOf(accounts ...models.User) *mockUserRepository {
	return &mockUserRepository{
		findActiveByLoginFn: func(_ context.Context, login string) (models.User, error) {
			for _, a := range accounts {
				if a.Login == login && a.IsActive() {
					return a, nil
				}
			}
			return models.User{}, store.ErrNoUserWasFound
		},
		findActiveByIDFn: func(_ context.Context, id string) (models.User, error) {
			for _, a := range accounts {
				if a.ID == id && a.IsActive() {
					return a, nil
				}
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
}

var (
	adminUser   = models.User{ID: "id-admin", Login: "admin", Password: "admin", Admin: true}
	regularUser = models.User{ID: "id-john", Login: "john", Password: "secret1"}
	otherUser   = models.User{ID: "id-kate", Login: "kate", Password: "secret2"}
)

// ─────────────────────────────────────────────
// AuthorizeAdmin
// ─────────────────────────────────────────────

func TestPolicyService_AuthorizeAdmin_Success(t *testing.T) {
	svc := newTestPolicyService(directoryOf(adminUser, regularUser))

	actor, err := svc.AuthorizeAdmin(context.Background(), "admin")

	require.NoError(t, err)
	assert.Equal(t, adminUser, actor)
}

func TestPolicyService_AuthorizeAdmin_NonAdmin(t *testing.T) {
	svc := newTestPolicyService(directoryOf(adminUser, regularUser))

	_, err := svc.AuthorizeAdmin(context.Background(), "john")

	require.ErrorIs(t, err, ErrForbidden)
}

func TestPolicyService_AuthorizeAdmin_RevokedActorDeniedDespiteValidToken(t *testing.T) {
	revoked := adminUser
	revokedAt := testNow
	revoked.RevokedAt = &revokedAt
	svc := newTestPolicyService(directoryOf(revoked))

	_, err := svc.AuthorizeAdmin(context.Background(), "admin")

	// a revoked account is denied the same way as a non-admin one
	require.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// AuthorizeSelfOrAdmin
// ─────────────────────────────────────────────

func TestPolicyService_AuthorizeSelfOrAdmin_AdminTargetsAnyone(t *testing.T) {
	svc := newTestPolicyService(directoryOf(adminUser, regularUser))

	actor, target, err := svc.AuthorizeSelfOrAdmin(context.Background(), "admin", "id-john")

	require.NoError(t, err)
	assert.Equal(t, adminUser, actor)
	assert.Equal(t, regularUser, target)
}

func TestPolicyService_AuthorizeSelfOrAdmin_SelfByID(t *testing.T) {
	svc := newTestPolicyService(directoryOf(regularUser))

	actor, target, err := svc.AuthorizeSelfOrAdmin(context.Background(), "john", "id-john")

	require.NoError(t, err)
	assert.Equal(t, actor.ID, target.ID)
}

func TestPolicyService_AuthorizeSelfOrAdmin_OtherUserForbidden(t *testing.T) {
	svc := newTestPolicyService(directoryOf(regularUser, otherUser))

	_, _, err := svc.AuthorizeSelfOrAdmin(context.Background(), "john", "id-kate")

	require.ErrorIs(t, err, ErrForbidden)
}

func TestPolicyService_AuthorizeSelfOrAdmin_MissingTargetReportedBeforeDenial(t *testing.T) {
	svc := newTestPolicyService(directoryOf(regularUser))

	_, _, err := svc.AuthorizeSelfOrAdmin(context.Background(), "john", "id-ghost")

	// not-found wins over forbidden even for an actor who would be denied
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestPolicyService_AuthorizeSelfOrAdmin_RevokedActor(t *testing.T) {
	revoked := regularUser
	revokedAt := testNow
	revoked.RevokedAt = &revokedAt
	svc := newTestPolicyService(directoryOf(revoked, otherUser))

	_, _, err := svc.AuthorizeSelfOrAdmin(context.Background(), "john", "id-kate")

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// AuthorizePasswordChange
// ─────────────────────────────────────────────

func TestPolicyService_AuthorizePasswordChange_SelfWithCorrectOldPassword(t *testing.T) {
	svc := newTestPolicyService(directoryOf(regularUser))

	_, _, err := svc.AuthorizePasswordChange(context.Background(), "john", "id-john", "secret1")

	require.NoError(t, err)
}

func TestPolicyService_AuthorizePasswordChange_SelfWithWrongOldPassword(t *testing.T) {
	svc := newTestPolicyService(directoryOf(regularUser))

	_, _, err := svc.AuthorizePasswordChange(context.Background(), "john", "id-john", "wrong")

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestPolicyService_AuthorizePasswordChange_AdminSkipsOldPasswordCheck(t *testing.T) {
	svc := newTestPolicyService(directoryOf(adminUser, regularUser))

	_, _, err := svc.AuthorizePasswordChange(context.Background(), "admin", "id-john", "")

	require.NoError(t, err)
}

func TestPolicyService_AuthorizePasswordChange_ForbiddenBeforePasswordCheck(t *testing.T) {
	svc := newTestPolicyService(directoryOf(regularUser, otherUser))

	_, _, err := svc.AuthorizePasswordChange(context.Background(), "john", "id-kate", "secret2")

	// the role/self denial must win over the old-password mismatch
	require.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

// ─────────────────────────────────────────────
// AuthorizeSelfProfile
// ─────────────────────────────────────────────

func TestPolicyService_AuthorizeSelfProfile_Success(t *testing.T) {
	svc := newTestPolicyService(directoryOf(regularUser))

	actor, err := svc.AuthorizeSelfProfile(context.Background(), "john", "john", "secret1")

	require.NoError(t, err)
	assert.Equal(t, regularUser, actor)
}

func TestPolicyService_AuthorizeSelfProfile_OtherAccountForbidden(t *testing.T) {
	svc := newTestPolicyService(directoryOf(regularUser, otherUser))

	_, err := svc.AuthorizeSelfProfile(context.Background(), "john", "kate", "secret2")

	require.ErrorIs(t, err, ErrForbidden)
}

func TestPolicyService_AuthorizeSelfProfile_WrongPassword(t *testing.T) {
	svc := newTestPolicyService(directoryOf(regularUser))

	_, err := svc.AuthorizeSelfProfile(context.Background(), "john", "john", "wrong")

	require.ErrorIs(t, err, ErrForbidden)
}
