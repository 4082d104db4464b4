package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/internal/utils"
	"github.com/nmaksimov/userdir/models"
)

// statusMessage is the body of responses that carry no entity.
type statusMessage struct {
	Message string `json:"message"`
}

// actorLogin extracts the authenticated actor's login placed into the
// context by the auth middleware. A missing value means the route was wired
// without the middleware; the request is rejected rather than trusted.
func (h *Handler) actorLogin(w http.ResponseWriter, r *http.Request) (string, bool) {
	actor, ok := utils.GetActorLoginFromContext(r.Context())
	if !ok || actor == "" {
		logger.FromRequest(r).Error().Msg("no actor login in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return actor, true
}

// createUsers handles POST /api/users: administrator-only atomic batch
// creation. The whole batch is validated first; one bad item or duplicate
// login rejects everything.
func (h *Handler) createUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}

	var request models.CreateUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	actor, err := h.services.Policy.AuthorizeAdmin(ctx, actorLogin)
	if err != nil {
		log.Err(err).Msg("batch creation denied")
		http.Error(w, "operation requires administrator role", statusFromError(err))
		return
	}

	createdUsers, err := h.services.Directory.CreateUsers(ctx, request, actor.Login)
	if err != nil {
		log.Err(err).Msg("error creating users")
		http.Error(w, "error creating users", statusFromError(err))
		return
	}

	ids := make([]string, 0, len(createdUsers))
	for _, u := range createdUsers {
		ids = append(ids, u.ID)
	}

	utils.WriteJSON(w, models.CreatedUsersResponse{Message: "users created", IDs: ids}, http.StatusCreated)
}

// updateUserDetails handles PUT /api/user/{id}/details: admin or self.
func (h *Handler) updateUserDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}
	targetID := chi.URLParam(r, "id")

	var request models.UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	actor, _, err := h.services.Policy.AuthorizeSelfOrAdmin(ctx, actorLogin, targetID)
	if err != nil {
		log.Err(err).Str("target_id", targetID).Msg("details update denied")
		http.Error(w, "details update denied", statusFromError(err))
		return
	}

	if err := h.services.Directory.UpdateDetails(ctx, targetID, request, actor.Login); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("error updating user details")
		http.Error(w, "error updating user details", statusFromError(err))
		return
	}

	utils.WriteJSON(w, statusMessage{Message: "user details updated"}, http.StatusOK)
}

// updateUserPassword handles PUT /api/user/{id}/password: admin or self.
// Non-admin actors must present their current password.
func (h *Handler) updateUserPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}
	targetID := chi.URLParam(r, "id")

	var request models.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	actor, _, err := h.services.Policy.AuthorizePasswordChange(ctx, actorLogin, targetID, request.OldPassword)
	if err != nil {
		log.Err(err).Str("target_id", targetID).Msg("password update denied")
		http.Error(w, "password update denied", statusFromError(err))
		return
	}

	if err := h.services.Directory.UpdatePassword(ctx, targetID, request.NewPassword, actor.Login); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("error updating user password")
		http.Error(w, "error updating user password", statusFromError(err))
		return
	}

	utils.WriteJSON(w, statusMessage{Message: "user password updated"}, http.StatusOK)
}

// updateUserLogin handles PUT /api/user/{id}/login: admin or self. The new
// login must be free among active accounts.
func (h *Handler) updateUserLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}
	targetID := chi.URLParam(r, "id")

	var request models.UpdateLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	actor, _, err := h.services.Policy.AuthorizeSelfOrAdmin(ctx, actorLogin, targetID)
	if err != nil {
		log.Err(err).Str("target_id", targetID).Msg("login update denied")
		http.Error(w, "login update denied", statusFromError(err))
		return
	}

	if err := h.services.Directory.UpdateLogin(ctx, targetID, request, actor.Login); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("error updating user login")
		http.Error(w, "error updating user login", statusFromError(err))
		return
	}

	utils.WriteJSON(w, statusMessage{Message: "user login updated"}, http.StatusOK)
}

// listActiveUsers handles GET /api/users/active: administrator-only listing
// of active accounts ordered by creation time.
func (h *Handler) listActiveUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}

	if _, err := h.services.Policy.AuthorizeAdmin(ctx, actorLogin); err != nil {
		log.Err(err).Msg("active users listing denied")
		http.Error(w, "operation requires administrator role", statusFromError(err))
		return
	}

	users, err := h.services.Directory.ListActive(ctx)
	if err != nil {
		log.Err(err).Msg("error listing active users")
		http.Error(w, "error listing active users", statusFromError(err))
		return
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, models.SummaryFromUser(u))
	}

	utils.WriteJSON(w, summaries, http.StatusOK)
}

// getUserByLogin handles GET /api/users/{login}: administrator-only lookup
// that reports the display fields and lifecycle state of any account.
func (h *Handler) getUserByLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}
	login := chi.URLParam(r, "login")

	if _, err := h.services.Policy.AuthorizeAdmin(ctx, actorLogin); err != nil {
		log.Err(err).Str("login", login).Msg("user lookup denied")
		http.Error(w, "operation requires administrator role", statusFromError(err))
		return
	}

	user, err := h.services.Directory.GetByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("error getting user")
		http.Error(w, "error getting user", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ProfileFromUser(user), http.StatusOK)
}

// getOwnProfile handles GET /api/users/self: an active user confirms their
// own login and password via query parameters and receives their full record.
func (h *Handler) getOwnProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}

	login := r.URL.Query().Get("login")
	password := r.URL.Query().Get("password")

	actor, err := h.services.Policy.AuthorizeSelfProfile(ctx, actorLogin, login, password)
	if err != nil {
		log.Err(err).Msg("own profile access denied")
		http.Error(w, "own profile access denied", statusFromError(err))
		return
	}

	utils.WriteJSON(w, actor, http.StatusOK)
}

// listUsersOlderThan handles GET /api/users/older-than/{years}:
// administrator-only listing of active users strictly older than the given
// number of whole years.
func (h *Handler) listUsersOlderThan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}

	years, err := strconv.Atoi(chi.URLParam(r, "years"))
	if err != nil {
		log.Err(err).Msg("years is not an integer")
		http.Error(w, "years must be a positive integer", http.StatusBadRequest)
		return
	}

	if _, err := h.services.Policy.AuthorizeAdmin(ctx, actorLogin); err != nil {
		log.Err(err).Msg("older-than listing denied")
		http.Error(w, "operation requires administrator role", statusFromError(err))
		return
	}

	agedUsers, err := h.services.Directory.OlderThan(ctx, years)
	if err != nil {
		log.Err(err).Int("years", years).Msg("error listing users older than")
		http.Error(w, "error listing users", statusFromError(err))
		return
	}

	utils.WriteJSON(w, agedUsers, http.StatusOK)
}

// deleteUser handles DELETE /api/users/{login}: administrator-only soft
// delete. The account stays in the directory with its revocation pair set.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}
	login := chi.URLParam(r, "login")

	actor, err := h.services.Policy.AuthorizeAdmin(ctx, actorLogin)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user deletion denied")
		http.Error(w, "operation requires administrator role", statusFromError(err))
		return
	}

	if _, err := h.services.Directory.SoftDelete(ctx, login, actor.Login); err != nil {
		log.Err(err).Str("login", login).Msg("error deleting user")
		http.Error(w, "error deleting user", statusFromError(err))
		return
	}

	utils.WriteJSON(w, statusMessage{Message: "user deleted"}, http.StatusOK)
}

// restoreUser handles PUT /api/users/{login}/restore: administrator-only
// reactivation of a soft-deleted account.
func (h *Handler) restoreUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorLogin, ok := h.actorLogin(w, r)
	if !ok {
		return
	}
	login := chi.URLParam(r, "login")

	actor, err := h.services.Policy.AuthorizeAdmin(ctx, actorLogin)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user restoration denied")
		http.Error(w, "operation requires administrator role", statusFromError(err))
		return
	}

	if _, err := h.services.Directory.Restore(ctx, login, actor.Login); err != nil {
		log.Err(err).Str("login", login).Msg("error restoring user")
		http.Error(w, "error restoring user", statusFromError(err))
		return
	}

	utils.WriteJSON(w, statusMessage{Message: "user restored"}, http.StatusOK)
}
