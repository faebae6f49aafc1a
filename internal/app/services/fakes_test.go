package services

import (
	"context"
	"mime/multipart"

	"github.com/yigit/placement/internal/app/models"
)

type fakeCompanyStore struct {
	companies []models.Company
	err       error
}

func (f *fakeCompanyStore) Create(_ context.Context, c *models.Company) error {
	if f.err != nil {
		return f.err
	}
	c.ID = int64(len(f.companies) + 1)
	f.companies = append(f.companies, *c)
	return nil
}

func (f *fakeCompanyStore) GetAll(context.Context) ([]models.Company, error) {
	return f.companies, f.err
}

type fakeStudentStore struct {
	students []models.Student
	err      error
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) error {
	if f.err != nil {
		return f.err
	}
	s.ID = int64(len(f.students) + 1)
	f.students = append(f.students, *s)
	return nil
}

func (f *fakeStudentStore) GetAll(context.Context) ([]models.Student, error) {
	return f.students, f.err
}

type fakePlacementStore struct {
	placements []models.Placement
	err        error
}

func (f *fakePlacementStore) Create(_ context.Context, p *models.Placement) error {
	if f.err != nil {
		return f.err
	}
	p.ID = int64(len(f.placements) + 1)
	f.placements = append(f.placements, *p)
	return nil
}

type fakeRecordStore struct {
	records    []models.PlacementRecord
	unplaced   []models.UnplacedStudent
	lastFilter *models.RecordFilter
	err        error
}

func (f *fakeRecordStore) FindRecords(_ context.Context, filter models.RecordFilter) ([]models.PlacementRecord, error) {
	f.lastFilter = &filter
	return f.records, f.err
}

func (f *fakeRecordStore) FindUnplaced(context.Context) ([]models.UnplacedStudent, error) {
	return f.unplaced, f.err
}

type fakeFileStorage struct {
	saved []string
	err   error
}

func (f *fakeFileStorage) SaveResume(fh *multipart.FileHeader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if fh == nil || len(fh.Filename) < 4 || fh.Filename[len(fh.Filename)-4:] != ".pdf" {
		return "", nil
	}
	f.saved = append(f.saved, fh.Filename)
	return fh.Filename, nil
}

func (f *fakeFileStorage) GetFullPath(filename string) string { return "/tmp/" + filename }

