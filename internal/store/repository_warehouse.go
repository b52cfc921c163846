package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// warehouseRepository is the SQL-backed implementation of
// [WarehouseRepository]. Besides plain CRUD it owns the transactional
// cascade that removes a warehouse together with its dependent records.
type warehouseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWarehouseRepository constructs a [WarehouseRepository] backed by the
// provided database connection and logger.
func NewWarehouseRepository(db *DB, logger *logger.Logger) WarehouseRepository {
	logger.Debug().Msg("creating warehouse repository")
	return &warehouseRepository{
		db:     db,
		logger: logger,
	}
}

func scanWarehouse(row rowScanner) (models.Warehouse, error) {
	var w models.Warehouse
	var location sql.NullString

	err := row.Scan(&w.WarehouseID, &w.CompanyID, &w.Name, &location, &w.Capacity, &w.CreatedAt)
	if err != nil {
		return models.Warehouse{}, err
	}

	w.Location = location.String
	return w, nil
}

func (r *warehouseRepository) CreateWarehouse(ctx context.Context, warehouse models.Warehouse) (models.Warehouse, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createWarehouse, warehouse.CompanyID, warehouse.Name, warehouse.Location, warehouse.Capacity)

	created, err := scanWarehouse(row)
	if err != nil {
		log.Err(err).Str("func", "*warehouseRepository.CreateWarehouse").Msg("error inserting warehouse")
		if isForeignKeyViolation(err) {
			return models.Warehouse{}, ErrForeignKeyViolation
		}
		return models.Warehouse{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *warehouseRepository) FindWarehouseByID(ctx context.Context, warehouseID int64) (models.Warehouse, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findWarehouseByID, warehouseID)

	found, err := scanWarehouse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Warehouse{}, ErrNotFound
		}
		log.Err(err).Str("func", "*warehouseRepository.FindWarehouseByID").Msg("error scanning warehouse row")
		return models.Warehouse{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *warehouseRepository) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listWarehouses)
	if err != nil {
		log.Err(err).Str("func", "*warehouseRepository.ListWarehouses").Msg("error listing warehouses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var warehouses []models.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		warehouses = append(warehouses, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return warehouses, nil
}

func (r *warehouseRepository) UpdateWarehouse(ctx context.Context, warehouse models.Warehouse) (models.Warehouse, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateWarehouse, warehouse.Name, warehouse.Location, warehouse.Capacity, warehouse.WarehouseID)

	updated, err := scanWarehouse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Warehouse{}, ErrNotFound
		}
		log.Err(err).Str("func", "*warehouseRepository.UpdateWarehouse").Msg("error scanning updated warehouse row")
		return models.Warehouse{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteWarehouse removes the warehouse and every record that references
// it — order items, orders, inventory transactions, products — in a single
// transaction, child tables first. Either the whole subtree disappears or
// nothing does.
//
// Returns [ErrNotFound] when the warehouse itself does not exist; the
// cascade statements tolerate empty child sets.
func (r *warehouseRepository) DeleteWarehouse(ctx context.Context, warehouseID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*warehouseRepository.DeleteWarehouse").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	cascade := []string{
		deleteWarehouseOrderItems,
		deleteWarehouseOrders,
		deleteWarehouseTransactions,
		deleteWarehouseProducts,
	}
	for _, query := range cascade {
		if _, err := tx.ExecContext(ctx, query, warehouseID); err != nil {
			log.Err(err).Str("func", "*warehouseRepository.DeleteWarehouse").Msg("error executing cascade delete step")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	res, err := tx.ExecContext(ctx, deleteWarehouse, warehouseID)
	if err != nil {
		log.Err(err).Str("func", "*warehouseRepository.DeleteWarehouse").Msg("error deleting warehouse")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		// nothing to delete; rollback discards the (empty) cascade
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*warehouseRepository.DeleteWarehouse").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
