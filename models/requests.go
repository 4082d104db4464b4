package models

import "time"

// CreateUserItem is a single account specification within a batch creation
// request. The whole batch is validated before any item is committed.
type CreateUserItem struct {
	Login    string     `json:"login"`
	Password string     `json:"password"`
	Name     string     `json:"name"`
	Gender   int        `json:"gender"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Admin    bool       `json:"admin"`
}

// CreateUsersRequest is the payload of the batch account creation operation.
type CreateUsersRequest struct {
	Users []CreateUserItem `json:"users"`
}

// UpdateDetailsRequest carries the replacement display fields of an account.
type UpdateDetailsRequest struct {
	Name     string     `json:"name"`
	Gender   int        `json:"gender"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

// UpdatePasswordRequest carries a password change. OldPassword is checked
// only for non-admin actors changing their own password.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateLoginRequest carries a login rename. The new login must be unique
// among active accounts.
type UpdateLoginRequest struct {
	NewLogin string `json:"new_login"`
}

// LoginRequest is the credential pair presented at authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
