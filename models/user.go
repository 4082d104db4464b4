package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, the credential pair, role information and
// full audit/lifecycle stamps. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user, assigned at creation
	// and immutable afterwards.
	ID string `json:"id"`

	// Login is the user login identifier, unique among active (non-revoked)
	// accounts. A revoked account's login may be reused by a new account.
	Login string `json:"login"`

	// Password stores the user's password in plain comparable form.
	// The comparison semantics of the directory depend on the exact stored
	// value, so no derivation is applied here.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Gender is a small integer code describing the user's gender.
	Gender int `json:"gender"`

	// Birthday is the optional date of birth.
	Birthday *time.Time `json:"birthday,omitempty"`

	// Admin marks the account as an administrator.
	Admin bool `json:"admin"`

	// CreatedAt/CreatedBy record when the account was created and by whom.
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`

	// ModifiedAt/ModifiedBy record the last mutation; updated on every
	// change to the account.
	ModifiedAt time.Time `json:"modified_at"`
	ModifiedBy string    `json:"modified_by"`

	// RevokedAt/RevokedBy form the soft-delete pair. Both are nil/empty for
	// an active account and are set and cleared together.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	RevokedBy string     `json:"revoked_by,omitempty"`
}

// AuditStamp carries the acting identity and the moment of a mutation.
// Every directory mutation records one into the target account's
// ModifiedAt/ModifiedBy pair.
type AuditStamp struct {
	By string
	At time.Time
}

// IsActive reports whether the account has not been soft-deleted.
func (u User) IsActive() bool {
	return u.RevokedAt == nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
