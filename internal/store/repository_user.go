package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It works against both PostgreSQL and SQLite through the database/sql
// abstraction; dialect differences (placeholders, unique-violation codes)
// are resolved via the wrapped [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
//
// Uniqueness of active logins is enforced by a partial unique index
// (login WHERE revoked_at IS NULL), so concurrent check-then-insert races
// surface as unique violations and are mapped to [ErrLoginAlreadyExists].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUsers inserts the batch inside a single transaction. A unique
// violation on any item rolls the whole batch back and is reported as
// [ErrLoginAlreadyExists], so no partial state is ever committed.
func (r *userRepository) CreateUsers(ctx context.Context, users []models.User) ([]models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUsers").Msg("error: cannot begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, u := range users {
		query, args, err := r.buildInsertUserQuery(u)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUsers").Msg("error: building insert query")
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if r.isUniqueViolation(err) {
				return nil, ErrLoginAlreadyExists
			}
			log.Err(err).Str("func", "*userRepository.CreateUsers").Str("login", u.Login).Msg("error: inserting user")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUsers").Msg("error: committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return users, nil
}

func (r *userRepository) FindActiveByLogin(ctx context.Context, login string) (models.User, error) {
	query, args, err := r.buildSelectActiveByLoginQuery(login)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, query, args...)
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (models.User, error) {
	query, args, err := r.buildSelectByLoginQuery(login)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, query, args...)
}

func (r *userRepository) FindActiveByID(ctx context.Context, id string) (models.User, error) {
	query, args, err := r.buildSelectActiveByIDQuery(id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, query, args...)
}

func (r *userRepository) ListActive(ctx context.Context) ([]models.User, error) {
	query, args, err := r.buildSelectActiveUsersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, query, args...)
}

func (r *userRepository) ListActiveOlderThan(ctx context.Context, threshold time.Time) ([]models.User, error) {
	query, args, err := r.buildSelectOlderThanQuery(threshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, query, args...)
}

func (r *userRepository) UpdateDetails(ctx context.Context, id string, details models.UpdateDetailsRequest, stamp models.AuditStamp) error {
	query, args, err := r.buildUpdateDetailsQuery(id, details, stamp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingMatch(ctx, query, args...)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id string, newPassword string, stamp models.AuditStamp) error {
	query, args, err := r.buildUpdatePasswordQuery(id, newPassword, stamp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingMatch(ctx, query, args...)
}

func (r *userRepository) UpdateLogin(ctx context.Context, id string, newLogin string, stamp models.AuditStamp) error {
	query, args, err := r.buildUpdateLoginQuery(id, newLogin, stamp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingMatch(ctx, query, args...)
}

// Revoke soft-deletes the active account with the given login. The UPDATE
// itself re-checks revoked_at IS NULL, so a concurrent toggle that wins the
// race surfaces as zero affected rows and maps to [ErrNoUserWasFound].
func (r *userRepository) Revoke(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error) {
	user, err := r.FindActiveByLogin(ctx, login)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := r.buildRevokeQuery(user.ID, stamp)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.execExpectingMatch(ctx, query, args...); err != nil {
		return models.User{}, err
	}

	revokedAt := stamp.At
	user.RevokedAt = &revokedAt
	user.RevokedBy = stamp.By
	user.ModifiedAt = stamp.At
	user.ModifiedBy = stamp.By

	return user, nil
}

func (r *userRepository) Restore(ctx context.Context, login string, stamp models.AuditStamp) (models.User, error) {
	user, err := r.FindByLogin(ctx, login)
	if err != nil {
		return models.User{}, err
	}
	if user.IsActive() {
		return models.User{}, ErrNoUserWasFound
	}

	query, args, err := r.buildRestoreQuery(user.ID, stamp)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.execExpectingMatch(ctx, query, args...); err != nil {
		return models.User{}, err
	}

	user.RevokedAt = nil
	user.RevokedBy = ""
	user.ModifiedAt = stamp.At
	user.ModifiedBy = stamp.By

	return user, nil
}

// queryOne runs a single-row SELECT and maps an empty result set to
// [ErrNoUserWasFound].
func (r *userRepository) queryOne(ctx context.Context, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.queryOne").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.queryOne").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// queryMany runs a multi-row SELECT.
func (r *userRepository) queryMany(ctx context.Context, query string, args ...any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.queryMany").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.queryMany").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.queryMany").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// execExpectingMatch runs a DML statement that must affect exactly one row;
// zero affected rows means the target was absent or in the wrong lifecycle
// state.
func (r *userRepository) execExpectingMatch(ctx context.Context, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.isUniqueViolation(err) {
			return ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.execExpectingMatch").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	return sqliteUniqueViolation(err)
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanUser.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser maps one result row in userColumns order into a models.User,
// converting nullable columns.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		birthday  sql.NullTime
		revokedAt sql.NullTime
		revokedBy sql.NullString
	)

	err := row.Scan(
		&user.ID,
		&user.Login,
		&user.Password,
		&user.Name,
		&user.Gender,
		&birthday,
		&user.Admin,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.ModifiedAt,
		&user.ModifiedBy,
		&revokedAt,
		&revokedBy,
	)
	if err != nil {
		return models.User{}, err
	}

	if birthday.Valid {
		b := birthday.Time
		user.Birthday = &b
	}
	if revokedAt.Valid {
		ra := revokedAt.Time
		user.RevokedAt = &ra
	}
	if revokedBy.Valid {
		user.RevokedBy = revokedBy.String
	}

	return user, nil
}
