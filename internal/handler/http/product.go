package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

type productRequest struct {
	WarehouseID int64   `json:"warehouseId" validate:"required,gt=0"`
	SKU         string  `json:"sku" validate:"required,max=64"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1024"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	product, err := h.services.Products.Create(r.Context(), models.Product{
		WarehouseID: req.WarehouseID,
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusCreated)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.ProductFilter{
		SKUPrefix: query.Get("sku"),
		NameLike:  query.Get("name"),
	}
	if raw := query.Get("warehouse_id"); raw != "" {
		warehouseID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || warehouseID <= 0 {
			utils.WriteError(w, "warehouse_id must be a positive integer", http.StatusBadRequest)
			return
		}
		filter.WarehouseID = warehouseID
	}
	if raw := query.Get("min_price"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || minPrice < 0 {
			utils.WriteError(w, "min_price must be a non-negative number", http.StatusBadRequest)
			return
		}
		filter.MinPrice = minPrice
	}
	if raw := query.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice < 0 {
			utils.WriteError(w, "max_price must be a non-negative number", http.StatusBadRequest)
			return
		}
		filter.MaxPrice = maxPrice
	}
	filter.Limit, filter.Offset = paginationFromQuery(r)

	products, err := h.services.Products.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.services.Products.Get(r.Context(), productID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, product, http.StatusOK)
}

// updateProduct changes catalogue attributes only. The quantity field of
// the payload is ignored here, stock moves exclusively through inventory
// transactions.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	productID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	product, err := h.services.Products.Update(r.Context(), models.Product{
		ProductID:   productID,
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := idFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Products.Delete(r.Context(), productID); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
