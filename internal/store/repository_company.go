package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// companyRepository is the SQL-backed implementation of [CompanyRepository].
type companyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCompanyRepository constructs a [CompanyRepository] backed by the
// provided database connection and logger.
func NewCompanyRepository(db *DB, logger *logger.Logger) CompanyRepository {
	logger.Debug().Msg("creating company repository")
	return &companyRepository{
		db:     db,
		logger: logger,
	}
}

func scanCompany(row rowScanner) (models.Company, error) {
	var c models.Company
	var description sql.NullString

	err := row.Scan(&c.CompanyID, &c.Name, &description, &c.CreatedAt)
	if err != nil {
		return models.Company{}, err
	}

	c.Description = description.String
	return c, nil
}

func (r *companyRepository) CreateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCompany, company.Name, company.Description)

	created, err := scanCompany(row)
	if err != nil {
		log.Err(err).Str("func", "*companyRepository.CreateCompany").Msg("error inserting company")
		return models.Company{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *companyRepository) FindCompanyByID(ctx context.Context, companyID int64) (models.Company, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findCompanyByID, companyID)

	found, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Company{}, ErrNotFound
		}
		log.Err(err).Str("func", "*companyRepository.FindCompanyByID").Msg("error scanning company row")
		return models.Company{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *companyRepository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCompanies)
	if err != nil {
		log.Err(err).Str("func", "*companyRepository.ListCompanies").Msg("error listing companies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return companies, nil
}

func (r *companyRepository) UpdateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCompany, company.Name, company.Description, company.CompanyID)

	updated, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Company{}, ErrNotFound
		}
		log.Err(err).Str("func", "*companyRepository.UpdateCompany").Msg("error scanning updated company row")
		return models.Company{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *companyRepository) DeleteCompany(ctx context.Context, companyID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteCompany, companyID)
	if err != nil {
		log.Err(err).Str("func", "*companyRepository.DeleteCompany").Msg("error deleting company")
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
