// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/internal/store"
	"github.com/nmaksimov/userdir/models"
)

// policyService is the concrete implementation of PolicyService.
//
// Every decision re-resolves the acting account from the directory by the
// login carried in the session token. The token's role claim is never
// consulted: revoking an account or stripping its admin flag takes effect on
// the next request, not at token expiry.
type policyService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewPolicyService(userRepository store.UserRepository, logger *logger.Logger) PolicyService {
	return &policyService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// AuthorizeAdmin permits the operation only for an active administrator.
// A missing, revoked or non-admin actor is denied uniformly with
// ErrForbidden so the response does not reveal the actor's state.
func (p *policyService) AuthorizeAdmin(ctx context.Context, actorLogin string) (models.User, error) {
	log := logger.FromContext(ctx)

	actor, err := p.userRepository.FindActiveByLogin(ctx, actorLogin)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("actor", actorLogin).Msg("acting account is missing or revoked")
			return models.User{}, ErrForbidden
		}
		return models.User{}, fmt.Errorf("actor resolution failed: %w", err)
	}

	if !actor.Admin {
		log.Error().Str("actor", actorLogin).Msg("operation requires administrator role")
		return models.User{}, ErrForbidden
	}

	return actor, nil
}

// AuthorizeSelfOrAdmin permits administrators to target any active account
// and ordinary users to target only themselves. Self-targeting is decided by
// identifier equality, not by login, so a rename cannot confuse the check.
//
// The checks run in a fixed order: the target is resolved first, then the
// actor, then the role/self decision. A request for a nonexistent target is
// therefore reported as not-found even to a caller who would have been
// denied anyway.
func (p *policyService) AuthorizeSelfOrAdmin(ctx context.Context, actorLogin string, targetUserID string) (models.User, models.User, error) {
	log := logger.FromContext(ctx)

	target, err := p.userRepository.FindActiveByID(ctx, targetUserID)
	if err != nil {
		log.Err(err).Str("target_id", targetUserID).Msg("target resolution failed")
		return models.User{}, models.User{}, fmt.Errorf("target resolution failed: %w", err)
	}

	actor, err := p.userRepository.FindActiveByLogin(ctx, actorLogin)
	if err != nil {
		log.Err(err).Str("actor", actorLogin).Msg("actor resolution failed")
		return models.User{}, models.User{}, fmt.Errorf("actor resolution failed: %w", err)
	}

	if !actor.Admin && actor.ID != target.ID {
		log.Error().
			Str("actor", actorLogin).
			Str("target_id", targetUserID).
			Msg("non-admin actor may target only their own account")
		return models.User{}, models.User{}, ErrForbidden
	}

	return actor, target, nil
}

// AuthorizePasswordChange extends AuthorizeSelfOrAdmin with the old-password
// check. Only a non-admin actor changing their own password must present the
// current one; administrators reset passwords without it.
func (p *policyService) AuthorizePasswordChange(ctx context.Context, actorLogin string, targetUserID string, oldPassword string) (models.User, models.User, error) {
	actor, target, err := p.AuthorizeSelfOrAdmin(ctx, actorLogin, targetUserID)
	if err != nil {
		return models.User{}, models.User{}, err
	}

	if !actor.Admin && target.Password != oldPassword {
		logger.FromContext(ctx).Error().
			Str("actor", actorLogin).
			Str("target_id", targetUserID).
			Msg("current password mismatch")
		return models.User{}, models.User{}, ErrWrongPassword
	}

	return actor, target, nil
}

// AuthorizeSelfProfile permits an active account to read its own record by
// confirming the presented login and password against the actor resolved
// from the token. A mismatch on either is denied with ErrForbidden.
func (p *policyService) AuthorizeSelfProfile(ctx context.Context, actorLogin string, login string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	actor, err := p.userRepository.FindActiveByLogin(ctx, actorLogin)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("actor", actorLogin).Msg("acting account is missing or revoked")
			return models.User{}, ErrForbidden
		}
		return models.User{}, fmt.Errorf("actor resolution failed: %w", err)
	}

	if actor.Login != login || actor.Password != password {
		log.Error().Str("actor", actorLogin).Msg("presented credentials do not match the acting account")
		return models.User{}, ErrForbidden
	}

	return actor, nil
}
