package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/logger"
)

// PlacementRepository handles placement database operations
type PlacementRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(conn db.DBTX) *PlacementRepository {
	return &PlacementRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create records a placement. Student and company ids are stored as given: they are
// not checked for existence and repeated pairs are accepted.
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	sql, args, err := r.sb.Insert("placements").
		Columns("student_id", "company_id").
		Values(placement.StudentID, placement.CompanyID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create placement SQL")
		return fmt.Errorf("failed to build create placement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&placement.ID); err != nil {
		logger.Error().Err(err).
			Int64("studentID", placement.StudentID).
			Int64("companyID", placement.CompanyID).
			Msg("Error executing create placement query")
		return fmt.Errorf("error creating placement: %w", err)
	}

	return nil
}

// Count returns the number of stored placements
func (r *PlacementRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, r.sb, "placements")
}
