package services

import (
	"context"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/logger"
)

// PlacementOptions lists what the place-student form can choose from
type PlacementOptions struct {
	Students  []models.Student
	Companies []models.Company
}

// PlacementService defines the interface for placement operations
type PlacementService interface {
	// PlaceStudent records the pairing without checking that either id exists or that
	// the pair is new.
	PlaceStudent(ctx context.Context, placement *models.Placement) error
	Options(ctx context.Context) (*PlacementOptions, error)
}

type placementServiceImpl struct {
	placementRepo PlacementStore
	studentRepo   StudentStore
	companyRepo   CompanyStore
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(placementRepo PlacementStore, studentRepo StudentStore, companyRepo CompanyStore) PlacementService {
	return &placementServiceImpl{
		placementRepo: placementRepo,
		studentRepo:   studentRepo,
		companyRepo:   companyRepo,
	}
}

func (s *placementServiceImpl) PlaceStudent(ctx context.Context, placement *models.Placement) error {
	if placement == nil {
		return apperrors.NewBadRequestError("placement is nil")
	}

	if err := s.placementRepo.Create(ctx, placement); err != nil {
		return apperrors.NewStoreError("failed to create placement", err)
	}

	logger.Info().
		Int64("placementID", placement.ID).
		Int64("studentID", placement.StudentID).
		Int64("companyID", placement.CompanyID).
		Msg("Student placed")
	return nil
}

func (s *placementServiceImpl) Options(ctx context.Context) (*PlacementOptions, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to list students", err)
	}

	companies, err := s.companyRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to list companies", err)
	}

	return &PlacementOptions{Students: students, Companies: companies}, nil
}
