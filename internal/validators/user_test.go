// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"testing"

	"github.com/nmaksimov/userdir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Pure predicates
// ─────────────────────────────────────────────

func TestValidLogin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain lowercase", input: "alice", want: true},
		{name: "mixed case with digits", input: "Bob42", want: true},
		{name: "empty", input: "", want: false},
		{name: "whitespace only", input: "   ", want: false},
		{name: "inner space", input: "ali ce", want: false},
		{name: "underscore", input: "ali_ce", want: false},
		{name: "cyrillic letters", input: "алиса", want: false},
		{name: "punctuation", input: "alice!", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidLogin(tt.input))
		})
	}
}

func TestValidPassword_SameRuleAsLogin(t *testing.T) {
	assert.True(t, ValidPassword("passw0rd"))
	assert.False(t, ValidPassword("pass word"))
	assert.False(t, ValidPassword(""))
	assert.False(t, ValidPassword("p@ss"))
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "latin name", input: "John Smith", want: true},
		{name: "cyrillic name", input: "Иван Петров", want: true},
		{name: "empty", input: "", want: false},
		{name: "whitespace only", input: "  ", want: false},
		{name: "digits", input: "John3", want: false},
		{name: "hyphenated", input: "Anne-Marie", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.input))
		})
	}
}

// ─────────────────────────────────────────────
// UserValidator dispatch and scoping
// ─────────────────────────────────────────────

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()
	err := v.Validate(context.Background(), 42)

	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUserValidator_CreateUserItem_Defaults(t *testing.T) {
	v := NewUserValidator()

	valid := models.CreateUserItem{Login: "bob", Password: "pass1", Name: "Bob"}
	require.NoError(t, v.Validate(context.Background(), valid))

	badLogin := models.CreateUserItem{Login: "b!b", Password: "pass1", Name: "Bob"}
	require.ErrorIs(t, v.Validate(context.Background(), badLogin), ErrInvalidLogin)

	badPassword := models.CreateUserItem{Login: "bob", Password: "", Name: "Bob"}
	require.ErrorIs(t, v.Validate(context.Background(), badPassword), ErrInvalidPassword)

	// the display name is free-form at creation, even empty or with digits
	oddName := models.CreateUserItem{Login: "bob", Password: "pass1", Name: "B0b"}
	require.NoError(t, v.Validate(context.Background(), oddName))

	emptyName := models.CreateUserItem{Login: "bob", Password: "pass1", Name: ""}
	require.NoError(t, v.Validate(context.Background(), emptyName))
}

func TestUserValidator_CreateUserItem_NameOptIn(t *testing.T) {
	v := NewUserValidator()

	item := models.CreateUserItem{Login: "bob", Password: "pass1", Name: "B0b"}
	require.ErrorIs(t, v.Validate(context.Background(), item, FieldName), ErrInvalidName)
}

func TestUserValidator_CreateUserItem_FieldScoping(t *testing.T) {
	v := NewUserValidator()

	// name is invalid but only login is validated
	item := models.CreateUserItem{Login: "bob", Password: "", Name: ""}
	require.NoError(t, v.Validate(context.Background(), item, FieldLogin))

	require.ErrorIs(t, v.Validate(context.Background(), item, "bogus"), ErrUnknownField)
}

func TestUserValidator_CreateUsersRequest(t *testing.T) {
	v := NewUserValidator()

	empty := models.CreateUsersRequest{}
	require.ErrorIs(t, v.Validate(context.Background(), empty), ErrEmptyBatch)

	mixed := models.CreateUsersRequest{Users: []models.CreateUserItem{
		{Login: "good", Password: "pass1", Name: "Good"},
		{Login: "bad login", Password: "pass1", Name: "Bad"},
	}}
	err := v.Validate(context.Background(), &mixed)
	require.ErrorIs(t, err, ErrInvalidLogin)
	assert.Contains(t, err.Error(), "index 1")
}

func TestUserValidator_UpdateRequests(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.UpdateDetailsRequest{Name: "New Name"}))
	require.ErrorIs(t, v.Validate(ctx, models.UpdateDetailsRequest{Name: "!"}), ErrInvalidName)

	require.NoError(t, v.Validate(ctx, models.UpdatePasswordRequest{NewPassword: "newpass1"}))
	require.ErrorIs(t, v.Validate(ctx, models.UpdatePasswordRequest{NewPassword: " "}), ErrInvalidPassword)

	require.NoError(t, v.Validate(ctx, models.UpdateLoginRequest{NewLogin: "renamed"}))
	require.ErrorIs(t, v.Validate(ctx, models.UpdateLoginRequest{NewLogin: "re named"}), ErrInvalidLogin)
}
