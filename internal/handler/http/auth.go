package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/service"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("signup payload failed validation")
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	user, token, err := h.services.Auth.Signup(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, service.ErrInvalidDataProvided.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			utils.WriteError(w, store.ErrUsernameAlreadyExists.Error(), http.StatusConflict)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteError(w, store.ErrEmailAlreadyExists.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("user_id", user.UserID).Str("role", user.Role.String()).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{User: user.Sanitized(), Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("login payload failed validation")
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	user, token, err := h.services.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, service.ErrInvalidDataProvided.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("login rejected")
			utils.WriteError(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrAccountDisabled):
			log.Err(err).Msg("disabled account login rejected")
			utils.WriteError(w, service.ErrAccountDisabled.Error(), http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{User: user.Sanitized(), Token: token.SignedString}, http.StatusOK)
}

// logout exists for API symmetry. Tokens are stateless, so there is
// nothing to revoke server-side; clients discard the token. Account
// deactivation is the server-side revocation path.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

// me returns the account of the authenticated caller as re-read by the
// auth middleware, not the claims baked into the token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	authUser, ok := utils.GetAuthUserFromContext(r.Context())
	if !ok {
		log.Err(ErrNotAuthenticated).Msg("me endpoint reached without identity")
		utils.WriteError(w, ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, struct {
		User models.AuthUser `json:"user"`
	}{User: authUser}, http.StatusOK)
}
