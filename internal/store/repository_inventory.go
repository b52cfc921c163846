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

// inventoryRepository is the SQL-backed implementation of
// [InventoryRepository]. Stock movements are recorded and applied in a
// single transaction so the audit trail and the product quantity can never
// diverge.
type inventoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInventoryRepository constructs an [InventoryRepository] backed by the
// provided database connection and logger.
func NewInventoryRepository(db *DB, logger *logger.Logger) InventoryRepository {
	logger.Debug().Msg("creating inventory repository")
	return &inventoryRepository{
		db:     db,
		logger: logger,
	}
}

func scanTransaction(row rowScanner) (models.InventoryTransaction, error) {
	var t models.InventoryTransaction
	var note sql.NullString

	err := row.Scan(&t.TransactionID, &t.ProductID, &t.WarehouseID, &t.Quantity, &t.Type, &note, &t.CreatedBy, &t.CreatedAt)
	if err != nil {
		return models.InventoryTransaction{}, err
	}

	t.Note = note.String
	return t, nil
}

// CreateTransaction applies the stock movement atomically:
//
//  1. the signed quantity delta is applied to the product row via a guarded
//     UPDATE that refuses to drive stock below zero;
//  2. the audit record is inserted with the warehouse resolved from the
//     product row.
//
// The caller provides the delta in txn.Quantity: positive for IN, negative
// for OUT, either sign for ADJUSTMENT.
//
// Error handling:
//   - product missing → [ErrNotFound].
//   - stock would go negative → [ErrInsufficientStock].
func (r *inventoryRepository) CreateTransaction(ctx context.Context, txn models.InventoryTransaction) (models.InventoryTransaction, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.CreateTransaction").Msg("error beginning transaction")
		return models.InventoryTransaction{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var warehouseID, newQuantity int64
	err = tx.QueryRowContext(ctx, applyQuantityDelta, txn.Quantity, txn.ProductID).Scan(&warehouseID, &newQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// zero rows: either the product does not exist or the guard
			// rejected a negative balance — disambiguate with a lookup
			var exists int
			checkErr := tx.QueryRowContext(ctx, `SELECT 1 FROM products WHERE product_id = $1;`, txn.ProductID).Scan(&exists)
			if errors.Is(checkErr, sql.ErrNoRows) {
				return models.InventoryTransaction{}, ErrNotFound
			}
			if checkErr != nil {
				return models.InventoryTransaction{}, fmt.Errorf("unexpected DB error: %w", checkErr)
			}
			return models.InventoryTransaction{}, ErrInsufficientStock
		}
		log.Err(err).Str("func", "*inventoryRepository.CreateTransaction").Msg("error applying quantity delta")
		return models.InventoryTransaction{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	row := tx.QueryRowContext(ctx, createTransaction,
		txn.ProductID, warehouseID, txn.Quantity, txn.Type, txn.Note, txn.CreatedBy)

	created, err := scanTransaction(row)
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.CreateTransaction").Msg("error inserting inventory transaction")
		return models.InventoryTransaction{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*inventoryRepository.CreateTransaction").Msg("error committing transaction")
		return models.InventoryTransaction{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// ListTransactions returns movements matching the filter, newest first.
func (r *inventoryRepository) ListTransactions(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryTransaction, error) {
	log := logger.FromContext(ctx)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("transaction_id", "product_id", "warehouse_id", "quantity", "transaction_type", "note", "created_by", "created_at").
		From("inventory_transactions").
		OrderBy("transaction_id DESC")

	if filter.WarehouseID > 0 {
		builder = builder.Where(sq.Eq{"warehouse_id": filter.WarehouseID})
	}
	if filter.ProductID > 0 {
		builder = builder.Where(sq.Eq{"product_id": filter.ProductID})
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
		log.Err(err).Str("func", "*inventoryRepository.ListTransactions").Msg("error listing inventory transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var transactions []models.InventoryTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transactions, nil
}
