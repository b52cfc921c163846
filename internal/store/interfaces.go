package store

import (
	"context"

	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// UserRepository is the credential store consumed by the auth service and
// the administrative user-management service.
type UserRepository interface {
	// CreateUser persists a new account together with its dependent
	// profile rows in a single transaction. See the implementation for
	// the exact row set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateLastLogin bumps the last_login timestamp. Last-writer-wins;
	// no invariant depends on ordering.
	UpdateLastLogin(ctx context.Context, userID int64) error

	UpdateUserRole(ctx context.Context, userID int64, role models.Role) (models.User, error)
	SetUserActive(ctx context.Context, userID int64, active bool) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

type CompanyRepository interface {
	CreateCompany(ctx context.Context, company models.Company) (models.Company, error)
	FindCompanyByID(ctx context.Context, companyID int64) (models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, company models.Company) (models.Company, error)
	DeleteCompany(ctx context.Context, companyID int64) error
}

type WarehouseRepository interface {
	CreateWarehouse(ctx context.Context, warehouse models.Warehouse) (models.Warehouse, error)
	FindWarehouseByID(ctx context.Context, warehouseID int64) (models.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]models.Warehouse, error)
	UpdateWarehouse(ctx context.Context, warehouse models.Warehouse) (models.Warehouse, error)

	// DeleteWarehouse removes the warehouse and all records that hang off
	// it (order items, orders, inventory transactions, products) inside
	// one transaction. Partial deletion is never observable.
	DeleteWarehouse(ctx context.Context, warehouseID int64) error
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	FindProductByID(ctx context.Context, productID int64) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

type InventoryRepository interface {
	// CreateTransaction inserts the audit record and applies its quantity
	// delta to the product row in the same transaction. An OUT movement
	// that would drive stock below zero fails with ErrInsufficientStock.
	CreateTransaction(ctx context.Context, txn models.InventoryTransaction) (models.InventoryTransaction, error)

	ListTransactions(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryTransaction, error)
}

type OrderRepository interface {
	// CreateOrder persists the order row and all its items atomically.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)

	FindOrderByID(ctx context.Context, orderID int64) (models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, from, to models.OrderStatus) (models.Order, error)
}
