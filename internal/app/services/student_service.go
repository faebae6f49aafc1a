package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/filestorage"
	"github.com/yigit/placement/internal/pkg/logger"
)

// StudentService defines the interface for student operations
type StudentService interface {
	// CreateStudent saves the resume first when it is a PDF, then inserts the student.
	// resume may be nil.
	CreateStudent(ctx context.Context, student *models.Student, resume *multipart.FileHeader) error
	ListStudents(ctx context.Context) ([]models.Student, error)
}

type studentServiceImpl struct {
	studentRepo StudentStore
	fileStorage filestorage.FileStorage
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, fileStorage filestorage.FileStorage) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		fileStorage: fileStorage,
	}
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student, resume *multipart.FileHeader) error {
	if student == nil {
		return apperrors.NewBadRequestError("student is nil")
	}

	student.Resume = nil
	filename, err := s.fileStorage.SaveResume(resume)
	if err != nil {
		return fmt.Errorf("failed to store resume: %w", err)
	}
	if filename != "" {
		student.Resume = &filename
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return apperrors.NewStoreError("failed to create student", err)
	}

	logger.Info().
		Int64("studentID", student.ID).
		Bool("resume", student.Resume != nil).
		Msg("Student created")
	return nil
}

func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to list students", err)
	}
	return students, nil
}
