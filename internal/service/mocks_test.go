// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"time"

	"github.com/nmaksimov/userdir/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUsersFn         func(ctx context.Context, users []models.User) ([]models.User, error)
	findActiveByLoginFn   func(ctx context.Context, login string) (models.User, error)
	findByLoginFn         func(ctx context.Context, login string) (models.User, error)
	findActiveByIDFn      func(ctx context.Context, id string) (models.User, error)
	listActiveFn          func(ctx context.Context) ([]models.User, error)
	listActiveOlderThanFn func(ctx context.Context, threshold time.Time) ([]models.User, error)
	updateDetailsFn       func(ctx context.Context, id string, details models.UpdateDetailsRequest, stamp models.AuditStamp) error
	updatePasswordFn      func(ctx context.Context, id string, newPassword string, stamp models.AuditStamp) error
	updateLoginFn         func(ctx context.Context, id string, newLogin string, stamp models.AuditStamp) error
	revokeFn              func(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error)
	restoreFn             func(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error)
}

func (m *mockUserRepository) CreateUsers(ctx context.Context, users []models.User) ([]models.User, error) {
	if m.createUsersFn != nil {
		return m.createUsersFn(ctx, users)
	}
	return users, nil
}

func (m *mockUserRepository) FindActiveByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findActiveByLoginFn != nil {
		return m.findActiveByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findByLoginFn != nil {
		return m.findByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindActiveByID(ctx context.Context, id string) (models.User, error) {
	if m.findActiveByIDFn != nil {
		return m.findActiveByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListActive(ctx context.Context) ([]models.User, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListActiveOlderThan(ctx context.Context, threshold time.Time) ([]models.User, error) {
	if m.listActiveOlderThanFn != nil {
		return m.listActiveOlderThanFn(ctx, threshold)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateDetails(ctx context.Context, id string, details models.UpdateDetailsRequest, stamp models.AuditStamp) error {
	if m.updateDetailsFn != nil {
		return m.updateDetailsFn(ctx, id, details, stamp)
	}
	return nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id string, newPassword string, stamp models.AuditStamp) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, newPassword, stamp)
	}
	return nil
}

func (m *mockUserRepository) UpdateLogin(ctx context.Context, id string, newLogin string, stamp models.AuditStamp) error {
	if m.updateLoginFn != nil {
		return m.updateLoginFn(ctx, id, newLogin, stamp)
	}
	return nil
}

func (m *mockUserRepository) Revoke(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error) {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, login, stamp)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) Restore(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error) {
	if m.restoreFn != nil {
		return m.restoreFn(ctx, login, stamp)
	}
	return models.User{}, nil
}

var errStorage = errors.New("storage error")
