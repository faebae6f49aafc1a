package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/export"
)

var janeAtAcme = models.PlacementRecord{
	StudentName: "Jane Doe", Branch: "CS", Year: 3,
	CompanyName: "Acme", Position: "Engineer", Package: 120000,
}

func TestCreateCompany(t *testing.T) {
	store := &fakeCompanyStore{}
	svc := NewCompanyService(store)

	company := &models.Company{Name: "Acme", Position: "Engineer", Package: 120000}
	require.NoError(t, svc.CreateCompany(context.Background(), company))
	assert.Equal(t, int64(1), company.ID)

	companies, err := svc.ListCompanies(context.Background())
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestCreateCompanyStoreFault(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyStore{err: errors.New("db down")})

	err := svc.CreateCompany(context.Background(), &models.Company{Name: "Acme"})
	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
}

func TestCreateStudentResume(t *testing.T) {
	tests := []struct {
		name     string
		resume   *multipart.FileHeader
		expected *string
	}{
		{"pdf is stored", &multipart.FileHeader{Filename: "jane.pdf"}, strPtr("jane.pdf")},
		{"non pdf is ignored", &multipart.FileHeader{Filename: "jane.docx"}, nil},
		{"missing file", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStudentStore{}
			svc := NewStudentService(store, &fakeFileStorage{})

			student := &models.Student{Name: "Jane Doe", Branch: "CS", Year: 3}
			require.NoError(t, svc.CreateStudent(context.Background(), student, tt.resume))

			require.Len(t, store.students, 1)
			assert.Equal(t, tt.expected, store.students[0].Resume)
		})
	}
}

func TestCreateStudentStorageFailureSkipsInsert(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store, &fakeFileStorage{err: errors.New("read-only file system")})

	err := svc.CreateStudent(context.Background(), &models.Student{Name: "Jane"}, &multipart.FileHeader{Filename: "a.pdf"})
	assert.ErrorContains(t, err, "read-only file system")
	assert.Empty(t, store.students)
}

func TestPlaceStudentAllowsDuplicates(t *testing.T) {
	placements := &fakePlacementStore{}
	svc := NewPlacementService(placements, &fakeStudentStore{}, &fakeCompanyStore{})

	for i := 0; i < 2; i++ {
		require.NoError(t, svc.PlaceStudent(context.Background(), &models.Placement{StudentID: 1, CompanyID: 1}))
	}
	assert.Len(t, placements.placements, 2)
}

func TestPlacementOptions(t *testing.T) {
	students := &fakeStudentStore{students: []models.Student{{ID: 1, Name: "Jane Doe"}}}
	companies := &fakeCompanyStore{companies: []models.Company{{ID: 1, Name: "Acme"}}}
	svc := NewPlacementService(&fakePlacementStore{}, students, companies)

	opts, err := svc.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, students.students, opts.Students)
	assert.Equal(t, companies.companies, opts.Companies)

	companies.err = errors.New("timeout")
	_, err = svc.Options(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
}

func TestBrowseUsesFilter(t *testing.T) {
	store := &fakeRecordStore{records: []models.PlacementRecord{janeAtAcme}}
	svc := NewRecordService(store)

	filter := models.RecordFilter{CompanyContains: "Acme", Sort: models.SortByPackageDesc}
	set, err := svc.Browse(context.Background(), RecordQuery{Filter: filter})
	require.NoError(t, err)

	assert.False(t, set.Unplaced)
	assert.Equal(t, []models.PlacementRecord{janeAtAcme}, set.Placements)
	require.NotNil(t, store.lastFilter)
	assert.Equal(t, filter, *store.lastFilter)
}

func TestBrowseUnplacedIgnoresFilter(t *testing.T) {
	store := &fakeRecordStore{unplaced: []models.UnplacedStudent{{Name: "John Roe", Branch: "ME", Year: 2}}}
	svc := NewRecordService(store)

	set, err := svc.Browse(context.Background(), RecordQuery{
		Filter:   models.RecordFilter{NameContains: "Jane"},
		Unplaced: true,
	})
	require.NoError(t, err)

	assert.True(t, set.Unplaced)
	assert.Nil(t, store.lastFilter)
	assert.Equal(t, 1, set.Len())
}

func TestRecordSetTableHeaders(t *testing.T) {
	placed := (&RecordSet{Placements: []models.PlacementRecord{janeAtAcme}}).Table()
	assert.Equal(t, PlacementHeaders, placed.Headers)
	assert.Equal(t, [][]interface{}{{"Jane Doe", "CS", 3, "Acme", "Engineer", 120000.0}}, placed.Rows)

	unplaced := (&RecordSet{Unplaced: true, Students: []models.UnplacedStudent{{Name: "John Roe", Branch: "ME", Year: 2}}}).Table()
	assert.Equal(t, UnplacedHeaders, unplaced.Headers)
	assert.Equal(t, [][]interface{}{{"John Roe", "ME", 2}}, unplaced.Rows)
}

func TestExportCSV(t *testing.T) {
	svc := NewRecordService(&fakeRecordStore{records: []models.PlacementRecord{janeAtAcme}})

	out, err := svc.Export(context.Background(), RecordQuery{Filter: models.RecordFilter{CompanyContains: "Acme"}}, export.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "placement_records.csv", out.FileName)
	assert.Equal(t, 1, out.Rows)
	assert.Equal(t,
		"Student Name,Branch,Year,Company Name,Position,Package\nJane Doe,CS,3,Acme,Engineer,120000.0\n",
		string(out.Content))
}

func TestExportXLSXUnplaced(t *testing.T) {
	svc := NewRecordService(&fakeRecordStore{unplaced: []models.UnplacedStudent{{Name: "John Roe", Branch: "ME", Year: 2}}})

	out, err := svc.Export(context.Background(), RecordQuery{Unplaced: true}, export.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "placement_records.xlsx", out.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(out.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Student Name", "Branch", "Year"}, {"John Roe", "ME", "2"}}, rows)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc := NewRecordService(&fakeRecordStore{})

	_, err := svc.Export(context.Background(), RecordQuery{}, export.Format("pdf"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedExport)
}

func TestExportStoreFault(t *testing.T) {
	svc := NewRecordService(&fakeRecordStore{err: errors.New("relation does not exist")})

	_, err := svc.Export(context.Background(), RecordQuery{}, export.FormatCSV)
	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
}

func strPtr(s string) *string { return &s }
