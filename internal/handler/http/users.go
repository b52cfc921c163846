package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

type changeRoleRequest struct {
	Role models.Role `json:"role" validate:"required"`
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	filter := models.UserFilter{
		Role: models.Role(r.URL.Query().Get("role")),
	}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.WriteError(w, "active must be a boolean", http.StatusBadRequest)
			return
		}
		filter.Active = &active
	}
	filter.Limit, filter.Offset = paginationFromQuery(r)

	users, err := h.services.UserAdmin.ListUsers(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	sanitized := make([]models.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}
	utils.WriteJSON(w, sanitized, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.UserAdmin.GetUser(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Sanitized(), http.StatusOK)
}

func (h *Handler) changeUserRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	actor, _ := utils.GetAuthUserFromContext(r.Context())

	user, err := h.services.UserAdmin.ChangeRole(r.Context(), actor, userID, req.Role)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Sanitized(), http.StatusOK)
}

func (h *Handler) setUserActive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.IsActive == nil {
		utils.WriteError(w, "isActive is required", http.StatusBadRequest)
		return
	}

	actor, _ := utils.GetAuthUserFromContext(r.Context())

	user, err := h.services.UserAdmin.SetActive(r.Context(), actor, userID, *req.IsActive)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Sanitized(), http.StatusOK)
}
