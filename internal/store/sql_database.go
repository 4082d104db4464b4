package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/migrations"
)

// DB wraps a live *sql.DB together with the dialect-specific details the
// repository needs: the squirrel placeholder format and the goose dialect
// used when applying migrations.
type DB struct {
	*sql.DB
	placeholder sq.PlaceholderFormat
	dialect     string
	logger      *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
