package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/internal/utils"
	"github.com/nmaksimov/userdir/models"
)

// login authenticates a credential pair and issues a session token.
//
// Every authentication failure is answered with a uniform 401 so the
// response does not disclose whether the login exists.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.Auth.Authenticate(ctx, request)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("authentication failed")
		http.Error(w, "invalid login/password", statusFromError(err))
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("id", foundUser.ID).Str("login", foundUser.Login).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
