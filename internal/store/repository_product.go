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

// productRepository is the SQL-backed implementation of [ProductRepository].
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var description sql.NullString

	err := row.Scan(&p.ProductID, &p.WarehouseID, &p.SKU, &p.Name, &description, &p.UnitPrice, &p.Quantity, &p.CreatedAt)
	if err != nil {
		return models.Product{}, err
	}

	p.Description = description.String
	return p, nil
}

// CreateProduct inserts a product row.
//
// Error handling:
//   - unique violation on (warehouse_id, sku) → [ErrSKUAlreadyExists].
//   - foreign-key violation (unknown warehouse) → [ErrForeignKeyViolation].
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProduct,
		product.WarehouseID, product.SKU, product.Name, product.Description, product.UnitPrice, product.Quantity)

	created, err := scanProduct(row)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")

		switch {
		case isUniqueViolation(err):
			return models.Product{}, ErrSKUAlreadyExists
		case isForeignKeyViolation(err):
			return models.Product{}, ErrForeignKeyViolation
		default:
			return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

func (r *productRepository) FindProductByID(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findProductByID, productID)

	found, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNotFound
		}
		log.Err(err).Str("func", "*productRepository.FindProductByID").Msg("error scanning product row")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListProducts returns products matching the filter, ordered by product_id.
// The WHERE clause is built dynamically with squirrel from the non-zero
// filter fields; SKU matches by prefix, name by substring.
func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("product_id", "warehouse_id", "sku", "name", "description", "unit_price", "quantity", "created_at").
		From("products").
		OrderBy("product_id")

	if filter.WarehouseID > 0 {
		builder = builder.Where(sq.Eq{"warehouse_id": filter.WarehouseID})
	}
	if filter.SKUPrefix != "" {
		builder = builder.Where(sq.Like{"sku": filter.SKUPrefix + "%"})
	}
	if filter.NameLike != "" {
		builder = builder.Where(sq.Like{"name": "%" + filter.NameLike + "%"})
	}
	if filter.MinPrice > 0 {
		builder = builder.Where(sq.GtOrEq{"unit_price": filter.MinPrice})
	}
	if filter.MaxPrice > 0 {
		builder = builder.Where(sq.LtOrEq{"unit_price": filter.MaxPrice})
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
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// UpdateProduct rewrites the descriptive fields of a product. Quantity is
// deliberately not updatable here; stock changes go through inventory
// transactions only.
func (r *productRepository) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateProduct,
		product.SKU, product.Name, product.Description, product.UnitPrice, product.ProductID)

	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return models.Product{}, ErrSKUAlreadyExists
		}
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error scanning updated product row")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteProduct, productID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error deleting product")
		if isForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
