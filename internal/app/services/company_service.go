package services

import (
	"context"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/logger"
)

// CompanyService defines the interface for company operations
type CompanyService interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	ListCompanies(ctx context.Context) ([]models.Company, error)
}

// companyServiceImpl implements the CompanyService interface
type companyServiceImpl struct {
	companyRepo CompanyStore
}

// NewCompanyService creates a new company service instance
func NewCompanyService(companyRepo CompanyStore) CompanyService {
	return &companyServiceImpl{companyRepo: companyRepo}
}

// CreateCompany stores the company as submitted
func (s *companyServiceImpl) CreateCompany(ctx context.Context, company *models.Company) error {
	if company == nil {
		return apperrors.NewBadRequestError("company is nil")
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return apperrors.NewStoreError("failed to create company", err)
	}

	logger.Info().Int64("companyID", company.ID).Str("name", company.Name).Msg("Company created")
	return nil
}

// ListCompanies returns every company
func (s *companyServiceImpl) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.companyRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to list companies", err)
	}
	return companies, nil
}
