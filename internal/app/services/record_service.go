package services

import (
	"context"
	"fmt"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/export"
	"github.com/yigit/placement/internal/pkg/logger"
)

var (
	// PlacementHeaders label the columns of placement record exports
	PlacementHeaders = []string{"Student Name", "Branch", "Year", "Company Name", "Position", "Package"}
	// UnplacedHeaders label the columns of unplaced student exports
	UnplacedHeaders = []string{"Student Name", "Branch", "Year"}
)

// RecordQuery is a browse request: the filter applies unless Unplaced is set, in
// which case students without placements are listed and the filter is ignored.
type RecordQuery struct {
	Filter   models.RecordFilter
	Unplaced bool
}

// RecordSet is the result of a browse. Placements is set for filtered browsing,
// Students when Unplaced is true.
type RecordSet struct {
	Unplaced   bool
	Placements []models.PlacementRecord
	Students   []models.UnplacedStudent
}

// Len returns the number of rows in the set
func (rs *RecordSet) Len() int {
	if rs.Unplaced {
		return len(rs.Students)
	}
	return len(rs.Placements)
}

// Table lays the set out for export. The resume column is never exported.
func (rs *RecordSet) Table() export.Table {
	if rs.Unplaced {
		rows := make([][]interface{}, 0, len(rs.Students))
		for _, s := range rs.Students {
			rows = append(rows, []interface{}{s.Name, s.Branch, s.Year})
		}
		return export.Table{Headers: UnplacedHeaders, Rows: rows}
	}

	rows := make([][]interface{}, 0, len(rs.Placements))
	for _, r := range rs.Placements {
		rows = append(rows, []interface{}{r.StudentName, r.Branch, r.Year, r.CompanyName, r.Position, r.Package})
	}
	return export.Table{Headers: PlacementHeaders, Rows: rows}
}

// Export is a rendered download
type Export struct {
	Format   export.Format
	FileName string
	Content  []byte
	Rows     int
}

// RecordService defines the interface for browsing and exporting records
type RecordService interface {
	Browse(ctx context.Context, query RecordQuery) (*RecordSet, error)
	Export(ctx context.Context, query RecordQuery, format export.Format) (*Export, error)
}

type recordServiceImpl struct {
	recordRepo RecordStore
}

// NewRecordService creates a new record service instance
func NewRecordService(recordRepo RecordStore) RecordService {
	return &recordServiceImpl{recordRepo: recordRepo}
}

func (s *recordServiceImpl) Browse(ctx context.Context, query RecordQuery) (*RecordSet, error) {
	if query.Unplaced {
		students, err := s.recordRepo.FindUnplaced(ctx)
		if err != nil {
			return nil, apperrors.NewStoreError("failed to query unplaced students", err)
		}
		return &RecordSet{Unplaced: true, Students: students}, nil
	}

	records, err := s.recordRepo.FindRecords(ctx, query.Filter)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query placement records", err)
	}
	return &RecordSet{Placements: records}, nil
}

func (s *recordServiceImpl) Export(ctx context.Context, query RecordQuery, format export.Format) (*Export, error) {
	if format != export.FormatCSV && format != export.FormatXLSX {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedExport, format)
	}

	set, err := s.Browse(ctx, query)
	if err != nil {
		return nil, err
	}

	content, err := export.Render(format, set.Table())
	if err != nil {
		logger.Error().Err(err).Str("format", string(format)).Msg("Failed to render export")
		return nil, err
	}

	logger.Debug().
		Str("format", string(format)).
		Bool("unplaced", set.Unplaced).
		Int("rows", set.Len()).
		Msg("Export rendered")

	return &Export{
		Format:   format,
		FileName: format.FileName(),
		Content:  content,
		Rows:     set.Len(),
	}, nil
}
