package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

type inventoryRequest struct {
	ProductID int64                  `json:"productId" validate:"required,gt=0"`
	Quantity  int64                  `json:"quantity" validate:"required"`
	Type      models.TransactionType `json:"type" validate:"required"`
	Note      string                 `json:"note" validate:"max=512"`
}

func (h *Handler) recordInventoryTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req inventoryRequest
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

	txn, err := h.services.Inventory.Record(r.Context(), actor, models.InventoryTransaction{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Type:      req.Type,
		Note:      req.Note,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, txn, http.StatusCreated)
}

func (h *Handler) listInventoryTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter models.InventoryFilter
	if raw := query.Get("warehouse_id"); raw != "" {
		warehouseID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || warehouseID <= 0 {
			utils.WriteError(w, "warehouse_id must be a positive integer", http.StatusBadRequest)
			return
		}
		filter.WarehouseID = warehouseID
	}
	if raw := query.Get("product_id"); raw != "" {
		productID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || productID <= 0 {
			utils.WriteError(w, "product_id must be a positive integer", http.StatusBadRequest)
			return
		}
		filter.ProductID = productID
	}
	filter.Limit, filter.Offset = paginationFromQuery(r)

	txns, err := h.services.Inventory.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, txns, http.StatusOK)
}
