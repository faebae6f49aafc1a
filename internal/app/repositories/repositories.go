package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/placement/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CompanyRepository   *CompanyRepository
	StudentRepository   *StudentRepository
	PlacementRepository *PlacementRepository
	RecordRepository    *RecordRepository
}

// NewRepositories initializes all repositories over one connection pool
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		CompanyRepository:   NewCompanyRepository(conn),
		StudentRepository:   NewStudentRepository(conn),
		PlacementRepository: NewPlacementRepository(conn),
		RecordRepository:    NewRecordRepository(conn),
	}
}

func count(ctx context.Context, conn db.DBTX, sb squirrel.StatementBuilderType, table string) (int64, error) {
	sql, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count %s query: %w", table, err)
	}

	var n int64
	if err := conn.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
