package store

import (
	"context"
	"fmt"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/config"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
)

// Storages bundles every repository over the shared database handle.
type Storages struct {
	DB *DB

	UserRepository      UserRepository
	CompanyRepository   CompanyRepository
	WarehouseRepository WarehouseRepository
	ProductRepository   ProductRepository
	InventoryRepository InventoryRepository
	OrderRepository     OrderRepository
}

// NewStorages opens the configured database backend and wires all
// repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return &Storages{
		DB:                  db,
		UserRepository:      NewUserRepository(db, log),
		CompanyRepository:   NewCompanyRepository(db, log),
		WarehouseRepository: NewWarehouseRepository(db, log),
		ProductRepository:   NewProductRepository(db, log),
		InventoryRepository: NewInventoryRepository(db, log),
		OrderRepository:     NewOrderRepository(db, log),
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
