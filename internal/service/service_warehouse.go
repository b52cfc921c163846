package service

import (
	"context"
	"strings"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// WarehouseService implements Warehouses.
type WarehouseService struct {
	warehouses store.WarehouseRepository
	log        *logger.Logger
}

func NewWarehouseService(warehouses store.WarehouseRepository, log *logger.Logger) *WarehouseService {
	return &WarehouseService{warehouses: warehouses, log: log}
}

func (s *WarehouseService) Create(ctx context.Context, warehouse models.Warehouse) (models.Warehouse, error) {
	warehouse.Name = strings.TrimSpace(warehouse.Name)
	if warehouse.Name == "" {
		return models.Warehouse{}, ErrInvalidDataProvided
	}
	return s.warehouses.CreateWarehouse(ctx, warehouse)
}

func (s *WarehouseService) Get(ctx context.Context, warehouseID int64) (models.Warehouse, error) {
	return s.warehouses.FindWarehouseByID(ctx, warehouseID)
}

func (s *WarehouseService) List(ctx context.Context) ([]models.Warehouse, error) {
	return s.warehouses.ListWarehouses(ctx)
}

func (s *WarehouseService) Update(ctx context.Context, warehouse models.Warehouse) (models.Warehouse, error) {
	warehouse.Name = strings.TrimSpace(warehouse.Name)
	if warehouse.Name == "" {
		return models.Warehouse{}, ErrInvalidDataProvided
	}
	return s.warehouses.UpdateWarehouse(ctx, warehouse)
}

// Delete removes the warehouse and everything attached to it. The cascade
// runs inside one transaction in the repository so a failure leaves the
// warehouse fully intact.
func (s *WarehouseService) Delete(ctx context.Context, warehouseID int64) error {
	if err := s.warehouses.DeleteWarehouse(ctx, warehouseID); err != nil {
		return err
	}
	s.log.Info().Int64("warehouse_id", warehouseID).Msg("warehouse deleted with dependents")
	return nil
}
