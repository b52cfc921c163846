package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

func newTestOrderRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &orderRepository{
		db:     &DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func orderRows(order models.Order) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"order_id", "client_id", "warehouse_id", "status", "created_at"}).
		AddRow(order.OrderID, order.ClientID, order.WarehouseID, order.Status, time.Now())
}

func TestCreateOrder_Success(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	order := models.Order{
		ClientID:    3,
		WarehouseID: 7,
		Status:      models.OrderPending,
		Items: []models.OrderItem{
			{ProductID: 42, Quantity: 2, UnitPrice: 9.99},
			{ProductID: 43, Quantity: 1, UnitPrice: 1.50},
		},
	}

	stored := order
	stored.OrderID = 100

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(order.ClientID, order.WarehouseID, order.Status).
		WillReturnRows(orderRows(stored))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(100), int64(42), int64(2), 9.99).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(100), int64(43), int64(1), 1.50).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OrderID != 100 {
		t.Errorf("expected OrderID=100, got %d", created.OrderID)
	}
	if len(created.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(created.Items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestCreateOrder_ItemFKViolationRollsBack(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	order := models.Order{
		ClientID:    3,
		WarehouseID: 7,
		Status:      models.OrderPending,
		Items:       []models.OrderItem{{ProductID: 404, Quantity: 1}},
	}

	stored := order
	stored.OrderID = 101

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(order.ClientID, order.WarehouseID, order.Status).
		WillReturnRows(orderRows(stored))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(101), int64(404), int64(1), float64(0)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), order)
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestUpdateOrderStatus_CompareAndSet(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	updated := models.Order{OrderID: 100, ClientID: 3, WarehouseID: 7, Status: models.OrderProcessing}

	mock.ExpectQuery("UPDATE orders").
		WithArgs(models.OrderProcessing, int64(100), models.OrderPending).
		WillReturnRows(orderRows(updated))

	got, err := repo.UpdateOrderStatus(context.Background(), 100, models.OrderPending, models.OrderProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.OrderProcessing {
		t.Errorf("expected status PROCESSING, got %s", got.Status)
	}
}

func TestUpdateOrderStatus_LostRace(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	// another transition already moved the order off PENDING
	mock.ExpectQuery("UPDATE orders").
		WithArgs(models.OrderProcessing, int64(100), models.OrderPending).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateOrderStatus(context.Background(), 100, models.OrderPending, models.OrderProcessing)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
