package service

import (
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/config"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
)

// Services bundles every business service behind its interface so the
// handler layer depends on behaviour, not on concrete types.
type Services struct {
	Auth       Auth
	UserAdmin  UserAdmin
	Companies  Companies
	Warehouses Warehouses
	Products   Products
	Inventory  Inventory
	Orders     Orders
}

// NewServices wires all services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		Auth:       NewAuthService(storages.UserRepository, cfg.Auth, log),
		UserAdmin:  NewUserAdminService(storages.UserRepository, log),
		Companies:  NewCompanyService(storages.CompanyRepository, log),
		Warehouses: NewWarehouseService(storages.WarehouseRepository, log),
		Products:   NewProductService(storages.ProductRepository, log),
		Inventory:  NewInventoryService(storages.InventoryRepository, log),
		Orders:     NewOrderService(storages.OrderRepository, storages.ProductRepository, log),
	}
}
