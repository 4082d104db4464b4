package store

import (
	"context"

	"github.com/nmaksimov/userdir/internal/config"
	"github.com/nmaksimov/userdir/internal/logger"
)

// Storages aggregates the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages selects and initializes the directory backing store from the
// storage configuration:
//   - a PostgreSQL DSN takes precedence;
//   - otherwise a SQLite path, if set;
//   - otherwise the in-memory store.
//
// SQL backends run pending migrations before the repository is handed out.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (Storages, error) {
	switch {
	case cfg.DB.DSN != "":
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return Storages{}, err
		}
		if err := db.Migrate(); err != nil {
			return Storages{}, err
		}
		return Storages{UserRepository: NewUserRepository(db, log)}, nil

	case cfg.DB.SQLitePath != "":
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return Storages{}, err
		}
		if err := db.Migrate(); err != nil {
			return Storages{}, err
		}
		return Storages{UserRepository: NewUserRepository(db, log)}, nil

	default:
		log.Info().Msg("no database configured, using in-memory user directory")
		return Storages{UserRepository: NewMemoryUserRepository(log)}, nil
	}
}
