package service

import (
	"context"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// InventoryService implements Inventory.
type InventoryService struct {
	inventory store.InventoryRepository
	log       *logger.Logger
}

func NewInventoryService(inventory store.InventoryRepository, log *logger.Logger) *InventoryService {
	return &InventoryService{inventory: inventory, log: log}
}

// Record applies one stock movement. Callers always submit positive
// quantities for IN and OUT; the sign of the applied delta follows the
// movement type. ADJUSTMENT takes the quantity as a raw delta, which may
// be negative, so stocktake corrections go both ways.
func (s *InventoryService) Record(ctx context.Context, actor models.AuthUser, txn models.InventoryTransaction) (models.InventoryTransaction, error) {
	if !txn.Type.Valid() || txn.ProductID == 0 {
		return models.InventoryTransaction{}, ErrInvalidDataProvided
	}

	switch txn.Type {
	case models.TransactionIn:
		if txn.Quantity <= 0 {
			return models.InventoryTransaction{}, ErrInvalidDataProvided
		}
	case models.TransactionOut:
		if txn.Quantity <= 0 {
			return models.InventoryTransaction{}, ErrInvalidDataProvided
		}
		txn.Quantity = -txn.Quantity
	case models.TransactionAdjustment:
		if txn.Quantity == 0 {
			return models.InventoryTransaction{}, ErrInvalidDataProvided
		}
	}

	txn.CreatedBy = actor.UserID

	stored, err := s.inventory.CreateTransaction(ctx, txn)
	if err != nil {
		return models.InventoryTransaction{}, err
	}

	s.log.Info().
		Int64("product_id", stored.ProductID).
		Int64("warehouse_id", stored.WarehouseID).
		Int64("quantity", stored.Quantity).
		Str("type", string(stored.Type)).
		Int64("created_by", stored.CreatedBy).
		Msg("inventory transaction recorded")

	return stored, nil
}

func (s *InventoryService) List(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryTransaction, error) {
	return s.inventory.ListTransactions(ctx, filter)
}
