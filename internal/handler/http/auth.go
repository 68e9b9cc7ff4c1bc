package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/utils"
	"github.com/MKhiriev/lexsight/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.CreateUserWithPassword(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		log.Err(err).Msg("user signup failed")
		writeError(w, r, err)
		return
	}

	h.startSession(ctx, w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, r, err)
		return
	}

	h.startSession(ctx, w, r, user, http.StatusOK)
}

// startSession opens a session for user, sets the cookie and answers with
// the session projection.
func (h *Handler) startSession(ctx context.Context, w http.ResponseWriter, r *http.Request, user models.User, status int) {
	session, token, err := h.services.AuthService.CreateSession(ctx, user.ID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("user_id", user.ID).Msg("session creation failed")
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, token, session.ExpiresAt)

	projection := user.Projection()
	writeJSON(w, r, models.UserResponse{User: &projection}, status)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := h.services.AuthService.DeleteSession(r.Context(), token); err != nil {
			logger.FromRequest(r).Err(err).Msg("error deleting session")
		}
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	var resp models.UserResponse
	if user, ok := utils.SessionUserFromContext(r.Context()); ok {
		resp.User = &user
	}

	writeJSON(w, r, resp, http.StatusOK)
}
