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

func newTestWarehouseRepo(t *testing.T) (*warehouseRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &warehouseRepository{
		db:     &DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func warehouseRows(w models.Warehouse) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"warehouse_id", "company_id", "name", "location", "capacity", "created_at"}).
		AddRow(w.WarehouseID, w.CompanyID, w.Name, w.Location, w.Capacity, time.Now())
}

func TestCreateWarehouse_Success(t *testing.T) {
	repo, mock, db := newTestWarehouseRepo(t)
	defer db.Close()

	warehouse := models.Warehouse{CompanyID: 1, Name: "North Hub", Location: "Oslo", Capacity: 5000}
	stored := warehouse
	stored.WarehouseID = 10

	mock.ExpectQuery("INSERT INTO warehouses").
		WithArgs(warehouse.CompanyID, warehouse.Name, warehouse.Location, warehouse.Capacity).
		WillReturnRows(warehouseRows(stored))

	created, err := repo.CreateWarehouse(context.Background(), warehouse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.WarehouseID != 10 {
		t.Errorf("expected WarehouseID=10, got %d", created.WarehouseID)
	}
}

func TestDeleteWarehouse_CascadeOrder(t *testing.T) {
	repo, mock, db := newTestWarehouseRepo(t)
	defer db.Close()

	warehouseID := int64(10)

	// children first, the warehouse row last
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM order_items").
		WithArgs(warehouseID).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM orders").
		WithArgs(warehouseID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM inventory_transactions").
		WithArgs(warehouseID).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec("DELETE FROM products").
		WithArgs(warehouseID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM warehouses").
		WithArgs(warehouseID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteWarehouse(context.Background(), warehouseID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestDeleteWarehouse_NotFoundRollsBack(t *testing.T) {
	repo, mock, db := newTestWarehouseRepo(t)
	defer db.Close()

	warehouseID := int64(404)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM order_items").WithArgs(warehouseID).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM orders").WithArgs(warehouseID).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM inventory_transactions").WithArgs(warehouseID).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM products").WithArgs(warehouseID).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM warehouses").WithArgs(warehouseID).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteWarehouse(context.Background(), warehouseID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteWarehouse_CascadeStepFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestWarehouseRepo(t)
	defer db.Close()

	warehouseID := int64(10)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM order_items").
		WithArgs(warehouseID).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.DeleteWarehouse(context.Background(), warehouseID)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestFindWarehouseByID_NotFound(t *testing.T) {
	repo, mock, db := newTestWarehouseRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM warehouses").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindWarehouseByID(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
