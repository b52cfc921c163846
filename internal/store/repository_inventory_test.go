package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

func newTestInventoryRepo(t *testing.T) (*inventoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &inventoryRepository{
		db:     &DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func transactionRows(txn models.InventoryTransaction) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"transaction_id", "product_id", "warehouse_id", "quantity", "transaction_type", "note", "created_by", "created_at"}).
		AddRow(txn.TransactionID, txn.ProductID, txn.WarehouseID, txn.Quantity, txn.Type, txn.Note, txn.CreatedBy, time.Now())
}

func TestCreateTransaction_AppliesDeltaAndInserts(t *testing.T) {
	repo, mock, db := newTestInventoryRepo(t)
	defer db.Close()

	txn := models.InventoryTransaction{
		ProductID: 42,
		Quantity:  5,
		Type:      models.TransactionIn,
		Note:      "restock",
		CreatedBy: 1,
	}

	stored := txn
	stored.TransactionID = 100
	stored.WarehouseID = 7

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE products").
		WithArgs(txn.Quantity, txn.ProductID).
		WillReturnRows(sqlmock.NewRows([]string{"warehouse_id", "quantity"}).AddRow(7, 15))
	mock.ExpectQuery("INSERT INTO inventory_transactions").
		WithArgs(txn.ProductID, int64(7), txn.Quantity, txn.Type, txn.Note, txn.CreatedBy).
		WillReturnRows(transactionRows(stored))
	mock.ExpectCommit()

	created, err := repo.CreateTransaction(context.Background(), txn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TransactionID != 100 {
		t.Errorf("expected TransactionID=100, got %d", created.TransactionID)
	}
	if created.WarehouseID != 7 {
		t.Errorf("expected warehouse resolved from product row, got %d", created.WarehouseID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestCreateTransaction_InsufficientStock(t *testing.T) {
	repo, mock, db := newTestInventoryRepo(t)
	defer db.Close()

	txn := models.InventoryTransaction{ProductID: 42, Quantity: -10, Type: models.TransactionOut, CreatedBy: 1}

	// guarded UPDATE matches no row, the product itself exists
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE products").
		WithArgs(txn.Quantity, txn.ProductID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT 1 FROM products").
		WithArgs(txn.ProductID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CreateTransaction(context.Background(), txn)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestCreateTransaction_ProductNotFound(t *testing.T) {
	repo, mock, db := newTestInventoryRepo(t)
	defer db.Close()

	txn := models.InventoryTransaction{ProductID: 404, Quantity: 5, Type: models.TransactionIn, CreatedBy: 1}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE products").
		WithArgs(txn.Quantity, txn.ProductID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT 1 FROM products").
		WithArgs(txn.ProductID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CreateTransaction(context.Background(), txn)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListTransactions_FiltersByProduct(t *testing.T) {
	repo, mock, db := newTestInventoryRepo(t)
	defer db.Close()

	stored := models.InventoryTransaction{
		TransactionID: 5,
		ProductID:     42,
		WarehouseID:   7,
		Quantity:      -3,
		Type:          models.TransactionOut,
		CreatedBy:     1,
	}

	mock.ExpectQuery("SELECT (.+) FROM inventory_transactions").
		WithArgs(int64(42)).
		WillReturnRows(transactionRows(stored))

	txns, err := repo.ListTransactions(context.Background(), models.InventoryFilter{ProductID: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 || txns[0].ProductID != 42 {
		t.Errorf("expected one transaction for product 42, got %+v", txns)
	}
}
