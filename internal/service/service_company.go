package service

import (
	"context"
	"strings"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// CompanyService implements Companies.
type CompanyService struct {
	companies store.CompanyRepository
	log       *logger.Logger
}

func NewCompanyService(companies store.CompanyRepository, log *logger.Logger) *CompanyService {
	return &CompanyService{companies: companies, log: log}
}

func (s *CompanyService) Create(ctx context.Context, company models.Company) (models.Company, error) {
	company.Name = strings.TrimSpace(company.Name)
	if company.Name == "" {
		return models.Company{}, ErrInvalidDataProvided
	}
	return s.companies.CreateCompany(ctx, company)
}

func (s *CompanyService) Get(ctx context.Context, companyID int64) (models.Company, error) {
	return s.companies.FindCompanyByID(ctx, companyID)
}

func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.companies.ListCompanies(ctx)
}

func (s *CompanyService) Update(ctx context.Context, company models.Company) (models.Company, error) {
	company.Name = strings.TrimSpace(company.Name)
	if company.Name == "" {
		return models.Company{}, ErrInvalidDataProvided
	}
	return s.companies.UpdateCompany(ctx, company)
}

func (s *CompanyService) Delete(ctx context.Context, companyID int64) error {
	return s.companies.DeleteCompany(ctx, companyID)
}
