package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/logger"
)

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(conn db.DBTX) *CompanyRepository {
	return &CompanyRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a company and sets its ID
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	sql, args, err := r.sb.Insert("companies").
		Columns("name", "position", "package").
		Values(company.Name, company.Position, company.Package).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create company SQL")
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&company.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create company query")
		return fmt.Errorf("error creating company: %w", err)
	}

	return nil
}

// GetAll retrieves every company in insertion order
func (r *CompanyRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	sql, args, err := r.sb.Select("id", "name", "COALESCE(position, '')", "COALESCE(package, 0)").
		From("companies").
		OrderBy("id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all companies SQL")
		return nil, fmt.Errorf("failed to build get companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all companies query")
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var company models.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.Position, &company.Package); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, nil
}

// Count returns the number of stored companies
func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, r.sb, "companies")
}
