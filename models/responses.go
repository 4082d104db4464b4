package models

import "time"

// TokenResponse is returned on successful authentication.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreatedUsersResponse reports the identifiers of accounts created by a
// batch creation request.
type CreatedUsersResponse struct {
	Message string   `json:"message"`
	IDs     []string `json:"ids"`
}

// UserSummary is the listing projection of an active account.
// It omits credentials and modification stamps.
type UserSummary struct {
	ID        string     `json:"id"`
	Login     string     `json:"login"`
	Name      string     `json:"name"`
	Gender    int        `json:"gender"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Admin     bool       `json:"admin"`
	CreatedAt time.Time  `json:"created_at"`
}

// UserProfile is the single-account projection returned by admin lookups.
type UserProfile struct {
	Login    string     `json:"login"`
	Name     string     `json:"name"`
	Gender   int        `json:"gender"`
	Birthday *time.Time `json:"birthday,omitempty"`
	IsActive bool       `json:"is_active"`
}

// AgedUser is a row of the older-than query: login, name and the computed
// whole-year age of the account holder.
type AgedUser struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
}

// SummaryFromUser projects a full account record into its listing form.
func SummaryFromUser(u User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Login:     u.Login,
		Name:      u.Name,
		Gender:    u.Gender,
		Birthday:  u.Birthday,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
	}
}

// ProfileFromUser projects a full account record into its lookup form.
func ProfileFromUser(u User) UserProfile {
	return UserProfile{
		Login:    u.Login,
		Name:     u.Name,
		Gender:   u.Gender,
		Birthday: u.Birthday,
		IsActive: u.IsActive(),
	}
}
