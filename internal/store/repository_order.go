package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// orderRepository is the SQL-backed implementation of [OrderRepository].
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	err := row.Scan(&o.OrderID, &o.ClientID, &o.WarehouseID, &o.Status, &o.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// CreateOrder persists the order row and every item in one transaction.
// A foreign-key violation (unknown warehouse or product) rolls the whole
// order back.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error beginning transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createOrder, order.ClientID, order.WarehouseID, order.Status)

	created, err := scanOrder(row)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order")
		if isForeignKeyViolation(err) {
			return models.Order{}, ErrForeignKeyViolation
		}
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, createOrderItem, created.OrderID, item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order item")
			if isForeignKeyViolation(err) {
				return models.Order{}, ErrForeignKeyViolation
			}
			return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		item.OrderID = created.OrderID
		created.Items = append(created.Items, item)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error committing transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// FindOrderByID retrieves an order and its items.
func (r *orderRepository) FindOrderByID(ctx context.Context, orderID int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findOrderByID, orderID)

	found, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrNotFound
		}
		log.Err(err).Str("func", "*orderRepository.FindOrderByID").Msg("error scanning order row")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	items, err := r.findItems(ctx, found.OrderID)
	if err != nil {
		return models.Order{}, err
	}
	found.Items = items

	return found, nil
}

func (r *orderRepository) findItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, findOrderItems, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// ListOrders returns order headers matching the filter, newest first.
// Items are not loaded for list views.
func (r *orderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("order_id", "client_id", "warehouse_id", "status", "created_at").
		From("orders").
		OrderBy("order_id DESC")

	if filter.ClientID > 0 {
		builder = builder.Where(sq.Eq{"client_id": filter.ClientID})
	}
	if filter.WarehouseID > 0 {
		builder = builder.Where(sq.Eq{"warehouse_id": filter.WarehouseID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error listing orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}

// UpdateOrderStatus moves the order from one status to another with a
// compare-and-set on the current value, so two concurrent transitions
// cannot both succeed. Zero rows means the order is missing or its status
// changed underneath the caller; both surface as [ErrNotFound] and the
// caller re-reads to distinguish.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, from, to models.OrderStatus) (models.Order, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateOrderStatus, to, orderID, from)

	updated, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrNotFound
		}
		log.Err(err).Str("func", "*orderRepository.UpdateOrderStatus").Msg("error scanning updated order row")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}
