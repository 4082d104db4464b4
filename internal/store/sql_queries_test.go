package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/models"
)

func newQueryRepo(placeholder sq.PlaceholderFormat) *userRepository {
	return &userRepository{
		db:     &DB{placeholder: placeholder},
		logger: logger.Nop(),
	}
}

func TestBuildInsertUserQuery_PlaceholderDialects(t *testing.T) {
	u := models.User{ID: "id-1", Login: "alice"}

	pgSQL, pgArgs, err := newQueryRepo(sq.Dollar).buildInsertUserQuery(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(pgSQL, "$13") {
		t.Errorf("expected dollar placeholders, got %q", pgSQL)
	}
	if len(pgArgs) != len(userColumns) {
		t.Errorf("expected %d args, got %d", len(userColumns), len(pgArgs))
	}

	liteSQL, _, err := newQueryRepo(sq.Question).buildInsertUserQuery(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(liteSQL, "$") || !strings.Contains(liteSQL, "?") {
		t.Errorf("expected question-mark placeholders, got %q", liteSQL)
	}
}

func TestBuildSelectActiveByLoginQuery_FiltersRevoked(t *testing.T) {
	query, args, err := newQueryRepo(sq.Dollar).buildSelectActiveByLoginQuery("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "revoked_at IS NULL") {
		t.Errorf("active lookup must filter revoked accounts: %q", query)
	}
	if !strings.Contains(query, "LIMIT 1") {
		t.Errorf("single-row lookup must be limited: %q", query)
	}
	if len(args) != 1 || args[0] != "alice" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildSelectByLoginQuery_IncludesRevoked(t *testing.T) {
	query, _, err := newQueryRepo(sq.Dollar).buildSelectByLoginQuery("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "revoked_at IS NULL") {
		t.Errorf("all-states lookup must not filter revoked accounts: %q", query)
	}
}

func TestBuildSelectOlderThanQuery(t *testing.T) {
	threshold := time.Date(1956, time.March, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := newQueryRepo(sq.Dollar).buildSelectOlderThanQuery(threshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "revoked_at IS NULL") {
		t.Errorf("older-than must only see active accounts: %q", query)
	}
	if !strings.Contains(query, "birthday IS NOT NULL") {
		t.Errorf("older-than must skip accounts without a birthday: %q", query)
	}
	if !strings.Contains(query, "birthday <") {
		t.Errorf("older-than must compare strictly: %q", query)
	}
	if len(args) != 1 {
		t.Errorf("expected the threshold as the only arg, got %v", args)
	}
}

func TestBuildRevokeQuery_TargetsOnlyActiveRow(t *testing.T) {
	stamp := models.AuditStamp{By: "admin", At: time.Now()}

	query, _, err := newQueryRepo(sq.Dollar).buildRevokeQuery("id-1", stamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "revoked_at IS NULL") {
		t.Errorf("revoke must re-check the active state: %q", query)
	}
	for _, col := range []string{"revoked_at", "revoked_by", "modified_at", "modified_by"} {
		if !strings.Contains(query, col+" = ") {
			t.Errorf("revoke must set %s: %q", col, query)
		}
	}
}

func TestBuildRestoreQuery_TargetsOnlyRevokedRow(t *testing.T) {
	stamp := models.AuditStamp{By: "admin", At: time.Now()}

	query, _, err := newQueryRepo(sq.Dollar).buildRestoreQuery("id-1", stamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "revoked_at IS NOT NULL") {
		t.Errorf("restore must re-check the revoked state: %q", query)
	}
}

func TestBuildUpdateQueries_GuardActiveState(t *testing.T) {
	repo := newQueryRepo(sq.Dollar)
	stamp := models.AuditStamp{By: "admin", At: time.Now()}

	builders := map[string]func() (string, []any, error){
		"details": func() (string, []any, error) {
			return repo.buildUpdateDetailsQuery("id-1", models.UpdateDetailsRequest{Name: "X"}, stamp)
		},
		"password": func() (string, []any, error) {
			return repo.buildUpdatePasswordQuery("id-1", "newpass1", stamp)
		},
		"login": func() (string, []any, error) {
			return repo.buildUpdateLoginQuery("id-1", "fresh", stamp)
		},
	}

	for name, build := range builders {
		query, _, err := build()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !strings.Contains(query, "revoked_at IS NULL") {
			t.Errorf("%s update must target only active rows: %q", name, query)
		}
		if !strings.Contains(query, "modified_at = ") || !strings.Contains(query, "modified_by = ") {
			t.Errorf("%s update must stamp the audit pair: %q", name, query)
		}
	}
}
