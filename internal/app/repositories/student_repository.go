package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/helpers"
	"github.com/yigit/placement/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(conn db.DBTX) *StudentRepository {
	return &StudentRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a student and sets its ID. A nil Resume is stored as NULL.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Insert("students").
		Columns("name", "branch", "year", "resume").
		Values(student.Name, student.Branch, student.Year, helpers.GetNullString(student.Resume)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&student.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetAll retrieves every student in insertion order
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query, args, err := r.sb.Select("id", "name", "COALESCE(branch, '')", "COALESCE(year, 0)", "resume").
		From("students").
		OrderBy("id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, fmt.Errorf("failed to build get students query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var student models.Student
		var resume sql.NullString
		if err := rows.Scan(&student.ID, &student.Name, &student.Branch, &student.Year, &resume); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		student.Resume = helpers.StringPtr(resume)
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Count returns the number of stored students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, r.sb, "students")
}
