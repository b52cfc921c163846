package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

type orderItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

type orderRequest struct {
	WarehouseID int64              `json:"warehouseId" validate:"required,gt=0"`
	Items       []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type orderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	requester, _ := utils.GetAuthUserFromContext(r.Context())

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.services.Orders.Create(r.Context(), requester, models.Order{
		WarehouseID: req.WarehouseID,
		Items:       items,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, order, http.StatusCreated)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	requester, _ := utils.GetAuthUserFromContext(r.Context())

	filter := models.OrderFilter{
		Status: models.OrderStatus(query.Get("status")),
	}
	if raw := query.Get("warehouse_id"); raw != "" {
		warehouseID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || warehouseID <= 0 {
			utils.WriteError(w, "warehouse_id must be a positive integer", http.StatusBadRequest)
			return
		}
		filter.WarehouseID = warehouseID
	}
	filter.Limit, filter.Offset = paginationFromQuery(r)

	orders, err := h.services.Orders.List(r.Context(), requester, filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, orders, http.StatusOK)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	requester, _ := utils.GetAuthUserFromContext(r.Context())

	order, err := h.services.Orders.Get(r.Context(), requester, orderID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, order, http.StatusOK)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	orderID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	order, err := h.services.Orders.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, order, http.StatusOK)
}
