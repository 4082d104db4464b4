// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nmaksimov/userdir/internal/config"
	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/internal/store"
	"github.com/nmaksimov/userdir/internal/utils"
	"github.com/nmaksimov/userdir/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the user directory and manages the JWT
// session token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate verifies the presented credential pair against the directory.
//
// Only active accounts can authenticate. Every failure mode, empty
// credentials, unknown login, revoked account or password mismatch, collapses
// into ErrUnauthorized so the response never reveals whether the login exists.
// Passwords are compared as stored, without derivation.
func (a *authService) Authenticate(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Msg("empty credentials provided")
		return models.User{}, ErrUnauthorized
	}

	foundUser, err := a.userRepository.FindActiveByLogin(ctx, request.Username)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user search by login failed")
		return models.User{}, ErrUnauthorized
	}

	if foundUser.Password != request.Password {
		log.Error().
			Str("id", foundUser.ID).
			Str("login", foundUser.Login).
			Msg("wrong password")
		return models.User{}, ErrUnauthorized
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, the account login as the subject and the
// account's role as a custom claim, and expires after tokenDuration.
//
// The role claim is informational only: every authorization decision
// re-resolves the account from the directory, so a role change or revocation
// takes effect before the token expires.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	role := models.RoleUser
	if user.Admin {
		role = models.RoleAdmin
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Login, role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the expiry. Any validation failure (expired, malformed, wrong signature) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
