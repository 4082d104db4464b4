// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/nmaksimov/userdir/internal/config"
	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/internal/store"
	"github.com/nmaksimov/userdir/internal/validators"
)

// Services bundles the application services behind their interfaces.
type Services struct {
	Directory DirectoryService
	Auth      AuthService
	Policy    PolicyService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	validator := validators.NewUserValidator()

	return &Services{
		Directory: NewDirectoryService(storages.UserRepository, validator, log),
		Auth:      NewAuthService(storages.UserRepository, cfg.Auth, log),
		Policy:    NewPolicyService(storages.UserRepository, log),
	}
}
