// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/migrations"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// newSQLiteStorages opens a migrated throwaway SQLite database. Unlike the
// sqlmock suites these tests run the real driver end to end, so they catch
// statement-level mistakes sqlmock cannot see, in particular placeholder
// binding: SQLite numbers $N parameters by order of first occurrence, so a
// statement whose placeholders are out of ascending order binds swapped
// arguments without any error.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "store.db")+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("opening sqlite database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := migrations.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("migrating sqlite database: %v", err)
	}

	log := logger.Nop()
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	return &Storages{
		DB:                  db,
		UserRepository:      NewUserRepository(db, log),
		CompanyRepository:   NewCompanyRepository(db, log),
		WarehouseRepository: NewWarehouseRepository(db, log),
		ProductRepository:   NewProductRepository(db, log),
		InventoryRepository: NewInventoryRepository(db, log),
		OrderRepository:     NewOrderRepository(db, log),
	}
}

func seedSQLiteUser(t *testing.T, s *Storages, username string, role models.Role) models.User {
	t.Helper()

	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Username:     username,
		PasswordHash: "hash",
		Email:        username + "@example.com",
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seeding user %q: %v", username, err)
	}
	return user
}

func seedSQLiteWarehouse(t *testing.T, s *Storages) models.Warehouse {
	t.Helper()
	ctx := context.Background()

	company, err := s.CompanyRepository.CreateCompany(ctx, models.Company{Name: "Acme"})
	if err != nil {
		t.Fatalf("seeding company: %v", err)
	}
	warehouse, err := s.WarehouseRepository.CreateWarehouse(ctx, models.Warehouse{
		CompanyID: company.CompanyID,
		Name:      "main",
		Capacity:  1000,
	})
	if err != nil {
		t.Fatalf("seeding warehouse: %v", err)
	}
	return warehouse
}

func seedSQLiteProduct(t *testing.T, s *Storages, warehouseID int64, sku string, quantity int64) models.Product {
	t.Helper()

	product, err := s.ProductRepository.CreateProduct(context.Background(), models.Product{
		WarehouseID: warehouseID,
		SKU:         sku,
		Name:        "widget",
		UnitPrice:   9.99,
		Quantity:    quantity,
	})
	if err != nil {
		t.Fatalf("seeding product %q: %v", sku, err)
	}
	return product
}

func TestSQLiteSetUserActive_DeactivatesAccount(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	user := seedSQLiteUser(t, s, "john", models.RoleClient)
	if !user.IsActive {
		t.Fatal("expected freshly created user to be active")
	}

	updated, err := s.UserRepository.SetUserActive(ctx, user.UserID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.IsActive {
		t.Error("expected returned user to be inactive")
	}
	if updated.UserID != user.UserID {
		t.Errorf("expected user_id %d, got %d", user.UserID, updated.UserID)
	}

	stored, err := s.UserRepository.FindUserByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.IsActive {
		t.Error("expected deactivation to persist")
	}
}

func TestSQLiteUpdateUserRole_Persists(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	user := seedSQLiteUser(t, s, "john", models.RoleClient)

	updated, err := s.UserRepository.UpdateUserRole(ctx, user.UserID, models.RoleStaff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Role != models.RoleStaff {
		t.Errorf("expected role STAFF, got %s", updated.Role)
	}

	stored, err := s.UserRepository.FindUserByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Role != models.RoleStaff {
		t.Errorf("expected stored role STAFF, got %s", stored.Role)
	}
}

func TestSQLiteCreateUser_DuplicateUsername(t *testing.T) {
	s := newSQLiteStorages(t)

	seedSQLiteUser(t, s, "john", models.RoleClient)

	_, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Username:     "john",
		PasswordHash: "hash",
		Email:        "other@example.com",
		Role:         models.RoleClient,
	})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

// Optional text fields default to the empty string in the schema, so
// creating entities without them must succeed on both backends.
func TestSQLiteCreate_WithoutOptionalFields(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	company, err := s.CompanyRepository.CreateCompany(ctx, models.Company{Name: "Acme"})
	if err != nil {
		t.Fatalf("creating company without description: %v", err)
	}
	if company.Description != "" {
		t.Errorf("expected empty description, got %q", company.Description)
	}

	warehouse, err := s.WarehouseRepository.CreateWarehouse(ctx, models.Warehouse{
		CompanyID: company.CompanyID,
		Name:      "main",
	})
	if err != nil {
		t.Fatalf("creating warehouse without location: %v", err)
	}

	product, err := s.ProductRepository.CreateProduct(ctx, models.Product{
		WarehouseID: warehouse.WarehouseID,
		SKU:         "SKU-1",
		Name:        "widget",
	})
	if err != nil {
		t.Fatalf("creating product without description: %v", err)
	}

	user := seedSQLiteUser(t, s, "john", models.RoleStaff)
	if _, err := s.InventoryRepository.CreateTransaction(ctx, models.InventoryTransaction{
		ProductID: product.ProductID,
		Quantity:  5,
		Type:      models.TransactionIn,
		CreatedBy: user.UserID,
	}); err != nil {
		t.Fatalf("recording transaction without note: %v", err)
	}
}

// The update statements carry several bind parameters each; round-tripping
// through the real driver proves every value lands in its own column.
func TestSQLiteUpdates_BindColumnsInOrder(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	warehouse := seedSQLiteWarehouse(t, s)
	product := seedSQLiteProduct(t, s, warehouse.WarehouseID, "SKU-1", 10)

	updatedWarehouse, err := s.WarehouseRepository.UpdateWarehouse(ctx, models.Warehouse{
		WarehouseID: warehouse.WarehouseID,
		Name:        "renamed",
		Location:    "east wing",
		Capacity:    2000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updatedWarehouse.Name != "renamed" || updatedWarehouse.Location != "east wing" || updatedWarehouse.Capacity != 2000 {
		t.Errorf("warehouse fields misbound: %+v", updatedWarehouse)
	}

	updatedProduct, err := s.ProductRepository.UpdateProduct(ctx, models.Product{
		ProductID: product.ProductID,
		SKU:       "SKU-2",
		Name:      "gadget",
		UnitPrice: 19.99,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updatedProduct.SKU != "SKU-2" || updatedProduct.Name != "gadget" || updatedProduct.UnitPrice != 19.99 {
		t.Errorf("product fields misbound: %+v", updatedProduct)
	}
	if updatedProduct.Quantity != 10 {
		t.Errorf("expected quantity untouched at 10, got %d", updatedProduct.Quantity)
	}

	company, err := s.CompanyRepository.UpdateCompany(ctx, models.Company{
		CompanyID:   warehouse.CompanyID,
		Name:        "Acme Corp",
		Description: "holding",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.Name != "Acme Corp" || company.Description != "holding" {
		t.Errorf("company fields misbound: %+v", company)
	}
}

func TestSQLiteInventory_DeltaAndGuard(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	warehouse := seedSQLiteWarehouse(t, s)
	product := seedSQLiteProduct(t, s, warehouse.WarehouseID, "SKU-1", 0)
	user := seedSQLiteUser(t, s, "john", models.RoleStaff)

	created, err := s.InventoryRepository.CreateTransaction(ctx, models.InventoryTransaction{
		ProductID: product.ProductID,
		Quantity:  10,
		Type:      models.TransactionIn,
		CreatedBy: user.UserID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.WarehouseID != warehouse.WarehouseID {
		t.Errorf("expected warehouse_id %d resolved from product, got %d", warehouse.WarehouseID, created.WarehouseID)
	}

	stored, err := s.ProductRepository.FindProductByID(ctx, product.ProductID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Quantity != 10 {
		t.Errorf("expected quantity 10 after inbound movement, got %d", stored.Quantity)
	}

	_, err = s.InventoryRepository.CreateTransaction(ctx, models.InventoryTransaction{
		ProductID: product.ProductID,
		Quantity:  -15,
		Type:      models.TransactionOut,
		CreatedBy: user.UserID,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	stored, err = s.ProductRepository.FindProductByID(ctx, product.ProductID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Quantity != 10 {
		t.Errorf("expected quantity unchanged at 10 after rejected movement, got %d", stored.Quantity)
	}
}

func TestSQLiteOrderStatus_CompareAndSet(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	warehouse := seedSQLiteWarehouse(t, s)
	product := seedSQLiteProduct(t, s, warehouse.WarehouseID, "SKU-1", 10)
	client := seedSQLiteUser(t, s, "client", models.RoleClient)

	order, err := s.OrderRepository.CreateOrder(ctx, models.Order{
		ClientID:    client.UserID,
		WarehouseID: warehouse.WarehouseID,
		Status:      models.OrderPending,
		Items: []models.OrderItem{
			{ProductID: product.ProductID, Quantity: 2, UnitPrice: product.UnitPrice},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := s.OrderRepository.UpdateOrderStatus(ctx, order.OrderID, models.OrderPending, models.OrderProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.OrderProcessing {
		t.Errorf("expected status PROCESSING, got %s", updated.Status)
	}

	// the order is no longer PENDING, so the same transition must miss
	_, err = s.OrderRepository.UpdateOrderStatus(ctx, order.OrderID, models.OrderPending, models.OrderProcessing)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	stored, err := s.OrderRepository.FindOrderByID(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != models.OrderProcessing {
		t.Errorf("expected stored status PROCESSING, got %s", stored.Status)
	}
}

func TestSQLiteDeleteWarehouse_Cascades(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	warehouse := seedSQLiteWarehouse(t, s)
	product := seedSQLiteProduct(t, s, warehouse.WarehouseID, "SKU-1", 10)
	client := seedSQLiteUser(t, s, "client", models.RoleClient)

	order, err := s.OrderRepository.CreateOrder(ctx, models.Order{
		ClientID:    client.UserID,
		WarehouseID: warehouse.WarehouseID,
		Status:      models.OrderPending,
		Items: []models.OrderItem{
			{ProductID: product.ProductID, Quantity: 1, UnitPrice: product.UnitPrice},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.WarehouseRepository.DeleteWarehouse(ctx, warehouse.WarehouseID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.WarehouseRepository.FindWarehouseByID(ctx, warehouse.WarehouseID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected warehouse gone, got %v", err)
	}
	if _, err := s.ProductRepository.FindProductByID(ctx, product.ProductID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected product gone, got %v", err)
	}
	if _, err := s.OrderRepository.FindOrderByID(ctx, order.OrderID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected order gone, got %v", err)
	}
}
