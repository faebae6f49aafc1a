package services

import (
	"context"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/repositories"
	"github.com/yigit/placement/internal/pkg/filestorage"
)

// CompanyStore persists companies
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) error
	GetAll(ctx context.Context) ([]models.Company, error)
}

// StudentStore persists students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]models.Student, error)
}

// PlacementStore persists placements
type PlacementStore interface {
	Create(ctx context.Context, placement *models.Placement) error
}

// RecordStore reads placement records and unplaced students
type RecordStore interface {
	FindRecords(ctx context.Context, filter models.RecordFilter) ([]models.PlacementRecord, error)
	FindUnplaced(ctx context.Context) ([]models.UnplacedStudent, error)
}

// Services holds all the service instances
type Services struct {
	CompanyService   CompanyService
	StudentService   StudentService
	PlacementService PlacementService
	RecordService    RecordService
}

// NewServices wires every service over the repositories and resume storage
func NewServices(repos *repositories.Repositories, storage filestorage.FileStorage) *Services {
	return &Services{
		CompanyService:   NewCompanyService(repos.CompanyRepository),
		StudentService:   NewStudentService(repos.StudentRepository, storage),
		PlacementService: NewPlacementService(repos.PlacementRepository, repos.StudentRepository, repos.CompanyRepository),
		RecordService:    NewRecordService(repos.RecordRepository),
	}
}
