package http

import (
	"encoding/json"
	"net/http"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

type warehouseRequest struct {
	CompanyID int64  `json:"companyId" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required,max=255"`
	Location  string `json:"location" validate:"max=512"`
	Capacity  int64  `json:"capacity" validate:"gte=0"`
}

func (h *Handler) createWarehouse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req warehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	warehouse, err := h.services.Warehouses.Create(r.Context(), models.Warehouse{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Location:  req.Location,
		Capacity:  req.Capacity,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, warehouse, http.StatusCreated)
}

func (h *Handler) listWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.services.Warehouses.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, warehouses, http.StatusOK)
}

func (h *Handler) getWarehouse(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	warehouse, err := h.services.Warehouses.Get(r.Context(), warehouseID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, warehouse, http.StatusOK)
}

func (h *Handler) updateWarehouse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	warehouseID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req warehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	warehouse, err := h.services.Warehouses.Update(r.Context(), models.Warehouse{
		WarehouseID: warehouseID,
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, warehouse, http.StatusOK)
}

// deleteWarehouse removes a warehouse and everything stored against it.
// The cascade runs in one transaction, so a mid-way failure leaves all
// records in place.
func (h *Handler) deleteWarehouse(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Warehouses.Delete(r.Context(), warehouseID); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
