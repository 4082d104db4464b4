package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/nmaksimov/userdir/models"
)

// userColumns is the canonical column order of the users table. Every SELECT
// built here returns columns in this order so that scanUser stays valid.
var userColumns = []string{
	"id",
	"login",
	"password",
	"name",
	"gender",
	"birthday",
	"admin",
	"created_at",
	"created_by",
	"modified_at",
	"modified_by",
	"revoked_at",
	"revoked_by",
}

func (r *userRepository) selectUsers() sq.SelectBuilder {
	return sq.Select(userColumns...).
		From("users").
		PlaceholderFormat(r.db.placeholder)
}

func (r *userRepository) buildInsertUserQuery(u models.User) (string, []any, error) {
	return sq.Insert("users").
		Columns(userColumns...).
		Values(
			u.ID,
			u.Login,
			u.Password,
			u.Name,
			u.Gender,
			u.Birthday,
			u.Admin,
			u.CreatedAt,
			u.CreatedBy,
			u.ModifiedAt,
			u.ModifiedBy,
			u.RevokedAt,
			u.RevokedBy,
		).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
}

func (r *userRepository) buildSelectActiveByLoginQuery(login string) (string, []any, error) {
	return r.selectUsers().
		Where(sq.Eq{"login": login}).
		Where(sq.Eq{"revoked_at": nil}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
}

func (r *userRepository) buildSelectByLoginQuery(login string) (string, []any, error) {
	return r.selectUsers().
		Where(sq.Eq{"login": login}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
}

func (r *userRepository) buildSelectActiveByIDQuery(id string) (string, []any, error) {
	return r.selectUsers().
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
}

func (r *userRepository) buildSelectActiveUsersQuery() (string, []any, error) {
	return r.selectUsers().
		Where(sq.Eq{"revoked_at": nil}).
		OrderBy("created_at ASC").
		ToSql()
}

func (r *userRepository) buildSelectOlderThanQuery(threshold time.Time) (string, []any, error) {
	return r.selectUsers().
		Where(sq.Eq{"revoked_at": nil}).
		Where(sq.NotEq{"birthday": nil}).
		Where(sq.Lt{"birthday": threshold}).
		OrderBy("created_at ASC").
		ToSql()
}

func (r *userRepository) buildUpdateDetailsQuery(id string, details models.UpdateDetailsRequest, stamp models.AuditStamp) (string, []any, error) {
	return sq.Update("users").
		Set("name", details.Name).
		Set("gender", details.Gender).
		Set("birthday", details.Birthday).
		Set("modified_at", stamp.At).
		Set("modified_by", stamp.By).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"revoked_at": nil}).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
}

func (r *userRepository) buildUpdatePasswordQuery(id string, newPassword string, stamp models.AuditStamp) (string, []any, error) {
	return sq.Update("users").
		Set("password", newPassword).
		Set("modified_at", stamp.At).
		Set("modified_by", stamp.By).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"revoked_at": nil}).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
}

func (r *userRepository) buildUpdateLoginQuery(id string, newLogin string, stamp models.AuditStamp) (string, []any, error) {
	return sq.Update("users").
		Set("login", newLogin).
		Set("modified_at", stamp.At).
		Set("modified_by", stamp.By).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"revoked_at": nil}).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
}

func (r *userRepository) buildRevokeQuery(id string, stamp models.AuditStamp) (string, []any, error) {
	return sq.Update("users").
		Set("revoked_at", stamp.At).
		Set("revoked_by", stamp.By).
		Set("modified_at", stamp.At).
		Set("modified_by", stamp.By).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"revoked_at": nil}).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
}

func (r *userRepository) buildRestoreQuery(id string, stamp models.AuditStamp) (string, []any, error) {
	return sq.Update("users").
		Set("revoked_at", nil).
		Set("revoked_by", "").
		Set("modified_at", stamp.At).
		Set("modified_by", stamp.By).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"revoked_at": nil}).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
}
