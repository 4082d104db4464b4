// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/internal/store"
	"github.com/nmaksimov/userdir/internal/utils"
	"github.com/nmaksimov/userdir/internal/validators"
	"github.com/nmaksimov/userdir/models"
)

const (
	// bootstrapAdminLogin and bootstrapAdminPassword are the credentials of
	// the built-in administrator seeded into an empty directory so that the
	// very first request can be authorized.
	bootstrapAdminLogin    = "admin"
	bootstrapAdminPassword = "admin"
	bootstrapAdminName     = "Administrator"

	// daysPerYear approximates a calendar year when converting between
	// birthdays and whole-year ages. Leap days average out over a lifetime.
	daysPerYear = 365.25
)

// directoryService is the concrete implementation of DirectoryService.
// It validates incoming data, assigns identifiers and audit stamps, and
// delegates persistence to a UserRepository.
type directoryService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	uuidGenerator  *utils.UUIDGenerator
	logger         *logger.Logger

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewDirectoryService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) DirectoryService {
	return &directoryService{
		userRepository: userRepository,
		validator:      validator,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
		now:            time.Now,
	}
}

// EnsureBootstrapAdmin seeds the built-in administrator account when no
// active account with its login exists. Called once at startup; a directory
// that already has an active "admin" account is left untouched, so a changed
// admin password survives restarts.
func (d *directoryService) EnsureBootstrapAdmin(ctx context.Context) error {
	_, err := d.userRepository.FindActiveByLogin(ctx, bootstrapAdminLogin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("bootstrap admin lookup failed: %w", err)
	}

	now := d.now()
	admin := models.User{
		ID:         d.uuidGenerator.Generate(),
		Login:      bootstrapAdminLogin,
		Password:   bootstrapAdminPassword,
		Name:       bootstrapAdminName,
		Admin:      true,
		CreatedAt:  now,
		CreatedBy:  bootstrapAdminLogin,
		ModifiedAt: now,
		ModifiedBy: bootstrapAdminLogin,
	}

	if _, err := d.userRepository.CreateUsers(ctx, []models.User{admin}); err != nil {
		// A concurrent seeding attempt may have won the race.
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return nil
		}
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}

	d.logger.Info().Str("login", bootstrapAdminLogin).Msg("bootstrap administrator created")
	return nil
}

// CreateUsers validates the whole batch before touching the store and then
// inserts it atomically. Either every account in the batch is created or
// none is: a single invalid item or duplicate login rejects the batch.
func (d *directoryService) CreateUsers(ctx context.Context, request models.CreateUsersRequest, actorLogin string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int("batch_size", len(request.Users)).Msg("batch validation failed")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := d.now()
	users := make([]models.User, 0, len(request.Users))
	for _, item := range request.Users {
		users = append(users, models.User{
			ID:         d.uuidGenerator.Generate(),
			Login:      item.Login,
			Password:   item.Password,
			Name:       item.Name,
			Gender:     item.Gender,
			Birthday:   item.Birthday,
			Admin:      item.Admin,
			CreatedAt:  now,
			CreatedBy:  actorLogin,
			ModifiedAt: now,
			ModifiedBy: actorLogin,
		})
	}

	createdUsers, err := d.userRepository.CreateUsers(ctx, users)
	if err != nil {
		log.Err(err).Int("batch_size", len(users)).Msg("batch creation ended with error")
		return nil, fmt.Errorf("batch creation ended with error: %w", err)
	}

	return createdUsers, nil
}

// UpdateDetails replaces the display fields of the account with the given
// identifier and records the audit stamp.
func (d *directoryService) UpdateDetails(ctx context.Context, userID string, request models.UpdateDetailsRequest, actorLogin string) error {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("id", userID).Msg("details validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := d.userRepository.UpdateDetails(ctx, userID, request, d.stamp(actorLogin)); err != nil {
		log.Err(err).Str("id", userID).Msg("details update ended with error")
		return fmt.Errorf("details update ended with error: %w", err)
	}

	return nil
}

// UpdatePassword overwrites the stored password of the account with the given
// identifier. The old-password check is the policy layer's concern and has
// already happened by the time this is called.
func (d *directoryService) UpdatePassword(ctx context.Context, userID string, newPassword string, actorLogin string) error {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, models.UpdatePasswordRequest{NewPassword: newPassword}); err != nil {
		log.Err(err).Str("id", userID).Msg("password validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := d.userRepository.UpdatePassword(ctx, userID, newPassword, d.stamp(actorLogin)); err != nil {
		log.Err(err).Str("id", userID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

// UpdateLogin renames the account with the given identifier. The new login
// must be unique among active accounts; a collision surfaces as
// store.ErrLoginAlreadyExists.
func (d *directoryService) UpdateLogin(ctx context.Context, userID string, request models.UpdateLoginRequest, actorLogin string) error {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("id", userID).Msg("login validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := d.userRepository.UpdateLogin(ctx, userID, request.NewLogin, d.stamp(actorLogin)); err != nil {
		log.Err(err).Str("id", userID).Str("new_login", request.NewLogin).Msg("login update ended with error")
		return fmt.Errorf("login update ended with error: %w", err)
	}

	return nil
}

// ListActive returns all active accounts ordered by creation time.
func (d *directoryService) ListActive(ctx context.Context) ([]models.User, error) {
	users, err := d.userRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("active users listing ended with error: %w", err)
	}

	return users, nil
}

// GetByLogin returns the active account with the given login. A revoked
// account is indistinguishable from an absent one here: both surface as
// store.ErrNoUserWasFound.
func (d *directoryService) GetByLogin(ctx context.Context, login string) (models.User, error) {
	user, err := d.userRepository.FindActiveByLogin(ctx, login)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	return user, nil
}

// OlderThan returns active users strictly older than the given number of
// whole years. Accounts without a birthday are excluded. The cutoff is
// calendar-exact (now minus the given years); only the reported ages use
// the 365.25-day year approximation.
func (d *directoryService) OlderThan(ctx context.Context, years int) ([]models.AgedUser, error) {
	if years <= 0 {
		return nil, ErrInvalidYears
	}

	now := d.now()
	threshold := now.AddDate(-years, 0, 0)

	users, err := d.userRepository.ListActiveOlderThan(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("older-than listing ended with error: %w", err)
	}

	agedUsers := make([]models.AgedUser, 0, len(users))
	for _, u := range users {
		agedUsers = append(agedUsers, models.AgedUser{
			Login: u.Login,
			Name:  u.Name,
			Age:   ageInYears(*u.Birthday, now),
		})
	}

	return agedUsers, nil
}

// SoftDelete revokes the active account with the given login. The revocation
// pair is set together with the audit stamp; the freed login becomes
// available for a new account.
func (d *directoryService) SoftDelete(ctx context.Context, login string, actorLogin string) (models.User, error) {
	log := logger.FromContext(ctx)

	revokedUser, err := d.userRepository.Revoke(ctx, login, d.stamp(actorLogin))
	if err != nil {
		log.Err(err).Str("login", login).Msg("user revocation ended with error")
		return models.User{}, fmt.Errorf("user revocation ended with error: %w", err)
	}

	return revokedUser, nil
}

// Restore reactivates the revoked account with the given login, clearing the
// revocation pair.
func (d *directoryService) Restore(ctx context.Context, login string, actorLogin string) (models.User, error) {
	log := logger.FromContext(ctx)

	restoredUser, err := d.userRepository.Restore(ctx, login, d.stamp(actorLogin))
	if err != nil {
		log.Err(err).Str("login", login).Msg("user restoration ended with error")
		return models.User{}, fmt.Errorf("user restoration ended with error: %w", err)
	}

	return restoredUser, nil
}

func (d *directoryService) stamp(actorLogin string) models.AuditStamp {
	return models.AuditStamp{By: actorLogin, At: d.now()}
}

// ageInYears converts the span between birthday and now into whole years
// using the average-year-length approximation.
func ageInYears(birthday, now time.Time) int {
	days := now.Sub(birthday).Hours() / 24
	return int(days / daysPerYear)
}
