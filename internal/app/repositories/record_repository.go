package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/helpers"
	"github.com/yigit/placement/internal/pkg/logger"
)

// RecordRepository reads the joined placement records. It never writes.
type RecordRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(conn db.DBTX) *RecordRepository {
	return &RecordRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// BuildRecordQuery builds the parameterized placement × student × company select for
// filter. Every non-empty filter adds one conjunctive clause.
func (r *RecordRepository) BuildRecordQuery(filter models.RecordFilter) squirrel.SelectBuilder {
	query := r.sb.Select(
		"s.name",
		"COALESCE(s.branch, '')",
		"COALESCE(s.year, 0)",
		"c.name",
		"COALESCE(c.position, '')",
		"COALESCE(c.package, 0)",
		"s.resume",
	).
		From("placements p").
		Join("students s ON p.student_id = s.id").
		Join("companies c ON p.company_id = c.id")

	where := squirrel.And{}
	if filter.NameContains != "" {
		where = append(where, contains("s.name", filter.NameContains))
	}
	if filter.BranchContains != "" {
		where = append(where, contains("s.branch", filter.BranchContains))
	}
	if filter.Year != "" {
		where = append(where, yearClause(filter.Year))
	}
	if filter.CompanyContains != "" {
		where = append(where, contains("c.name", filter.CompanyContains))
	}
	if len(where) > 0 {
		query = query.Where(where)
	}

	switch filter.Sort {
	case models.SortByPackageDesc:
		query = query.OrderBy("c.package DESC NULLS LAST")
	case models.SortByCompanyNameAsc:
		query = query.OrderBy(`c.name COLLATE "C" ASC`)
	}

	return query
}

// contains matches value as a case-sensitive substring of column. The empty ESCAPE
// turns off backslash escaping so only % and _ act as wildcards.
func contains(column, value string) squirrel.Sqlizer {
	return squirrel.Expr(column+" LIKE ? ESCAPE ''", "%"+value+"%")
}

// yearClause compares the year exactly. A value that is not a valid INTEGER is
// compared as text, so it matches nothing instead of failing the query.
func yearClause(raw string) squirrel.Sqlizer {
	if year, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return squirrel.Eq{"s.year": int32(year)}
	}
	return squirrel.Expr("s.year::text = ?", raw)
}

// BuildUnplacedQuery selects students that no placement row references, ordered by id
func (r *RecordRepository) BuildUnplacedQuery() squirrel.SelectBuilder {
	return r.sb.Select("s.name", "COALESCE(s.branch, '')", "COALESCE(s.year, 0)").
		From("students s").
		Where("NOT EXISTS (SELECT 1 FROM placements p WHERE p.student_id = s.id)").
		OrderBy("s.id")
}

// FindRecords returns every placement record matching filter
func (r *RecordRepository) FindRecords(ctx context.Context, filter models.RecordFilter) ([]models.PlacementRecord, error) {
	query, args, err := r.BuildRecordQuery(filter).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find records SQL")
		return nil, fmt.Errorf("failed to build find records query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Interface("filter", filter).Msg("Error executing find records query")
		return nil, fmt.Errorf("failed to query placement records: %w", err)
	}
	defer rows.Close()

	records := []models.PlacementRecord{}
	for rows.Next() {
		var rec models.PlacementRecord
		var resume sql.NullString
		if err := rows.Scan(
			&rec.StudentName, &rec.Branch, &rec.Year,
			&rec.CompanyName, &rec.Position, &rec.Package,
			&resume,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning placement record row")
			return nil, fmt.Errorf("failed to scan placement record row: %w", err)
		}
		rec.Resume = helpers.StringPtr(resume)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating placement record rows: %w", err)
	}

	return records, nil
}

// FindUnplaced returns students without any placement
func (r *RecordRepository) FindUnplaced(ctx context.Context) ([]models.UnplacedStudent, error) {
	query, args, err := r.BuildUnplacedQuery().ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find unplaced SQL")
		return nil, fmt.Errorf("failed to build find unplaced query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find unplaced query")
		return nil, fmt.Errorf("failed to query unplaced students: %w", err)
	}
	defer rows.Close()

	students := []models.UnplacedStudent{}
	for rows.Next() {
		var s models.UnplacedStudent
		if err := rows.Scan(&s.Name, &s.Branch, &s.Year); err != nil {
			return nil, fmt.Errorf("failed to scan unplaced student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unplaced student rows: %w", err)
	}

	return students, nil
}
