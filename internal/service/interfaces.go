// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package service

import (
	"context"

	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// Auth covers registration, credential checks and token handling. Every
// method that touches storage takes a context so callers can cancel.
type Auth interface {
	// Signup registers a new user, creates the default profile rows in
	// the same transaction and returns the stored user together with a
	// freshly signed token.
	Signup(ctx context.Context, username, password, email string) (models.User, models.Token, error)

	// Login verifies the given credentials and returns the user with a
	// signed token. The password is always checked before the account
	// status so disabled accounts do not leak through error timing.
	Login(ctx context.Context, username, password string) (models.User, models.Token, error)

	// Authenticate validates a raw token string, re-reads the referenced
	// account and returns the request identity. It fails when the token
	// is invalid or the account is inactive or gone.
	Authenticate(ctx context.Context, tokenString string) (models.AuthUser, error)

	// CreateToken signs a token for an already authenticated user.
	CreateToken(user models.User) (models.Token, error)
}

// UserAdmin is the administrative account management surface.
type UserAdmin interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// ChangeRole replaces the role of the given account. The change is
	// written to the audit log with the acting administrator.
	ChangeRole(ctx context.Context, actor models.AuthUser, userID int64, role models.Role) (models.User, error)

	// SetActive enables or disables the given account. Disabling takes
	// effect on the next request of that account, not on token expiry.
	SetActive(ctx context.Context, actor models.AuthUser, userID int64, active bool) (models.User, error)
}

// Companies manages company records.
type Companies interface {
	Create(ctx context.Context, company models.Company) (models.Company, error)
	Get(ctx context.Context, companyID int64) (models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
	Update(ctx context.Context, company models.Company) (models.Company, error)
	Delete(ctx context.Context, companyID int64) error
}

// Warehouses manages warehouse records including the cascading delete.
type Warehouses interface {
	Create(ctx context.Context, warehouse models.Warehouse) (models.Warehouse, error)
	Get(ctx context.Context, warehouseID int64) (models.Warehouse, error)
	List(ctx context.Context) ([]models.Warehouse, error)
	Update(ctx context.Context, warehouse models.Warehouse) (models.Warehouse, error)

	// Delete removes the warehouse together with its products, inventory
	// transactions and orders in a single transaction.
	Delete(ctx context.Context, warehouseID int64) error
}

// Products manages the product catalogue. Stock quantities are never set
// directly here, they only move through inventory transactions.
type Products interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Get(ctx context.Context, productID int64) (models.Product, error)
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, productID int64) error
}

// Inventory records stock movements.
type Inventory interface {
	// Record applies one stock movement and returns the stored
	// transaction. OUT movements that would drive stock negative fail
	// with store.ErrInsufficientStock.
	Record(ctx context.Context, actor models.AuthUser, txn models.InventoryTransaction) (models.InventoryTransaction, error)
	List(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryTransaction, error)
}

// Orders manages the order lifecycle.
type Orders interface {
	// Create places an order for the requesting client. Unit prices are
	// captured from the catalogue at creation time.
	Create(ctx context.Context, requester models.AuthUser, order models.Order) (models.Order, error)

	// Get returns one order. Clients only see their own orders.
	Get(ctx context.Context, requester models.AuthUser, orderID int64) (models.Order, error)

	// List returns orders matching the filter. For clients the filter is
	// forced to their own client id.
	List(ctx context.Context, requester models.AuthUser, filter models.OrderFilter) ([]models.Order, error)

	// UpdateStatus advances the order along the status state machine.
	UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) (models.Order, error)
}
