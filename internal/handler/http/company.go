package http

import (
	"encoding/json"
	"net/http"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

type companyRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1024"`
}

func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	company, err := h.services.Companies.Create(r.Context(), models.Company{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, company, http.StatusCreated)
}

func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.services.Companies.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, companies, http.StatusOK)
}

func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	company, err := h.services.Companies.Get(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, company, http.StatusOK)
}

func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	companyID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	company, err := h.services.Companies.Update(r.Context(), models.Company{
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, company, http.StatusOK)
}

func (h *Handler) deleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Companies.Delete(r.Context(), companyID); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
