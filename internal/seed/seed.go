package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/placement/internal/app/models"
	appRepos "github.com/yigit/placement/internal/app/repositories"
)

// CreateDemoData inserts a small demo data set when the store is completely empty:
// Acme, Jane Doe placed at Acme and John Roe unplaced. It reports whether anything
// was inserted.
func CreateDemoData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) (bool, error) {
	empty, err := storeIsEmpty(ctx, repos)
	if err != nil {
		return false, err
	}
	if !empty {
		lgr.Info().Msg("Store already has data, skipping demo seed")
		return false, nil
	}

	lgr.Info().Msg("Creating demo data (companies/students/placements)...")

	acme := &appModels.Company{Name: "Acme", Position: "Engineer", Package: 120000}
	if err := repos.CompanyRepository.Create(ctx, acme); err != nil {
		return false, fmt.Errorf("error creating demo company: %w", err)
	}

	jane := &appModels.Student{Name: "Jane Doe", Branch: "CS", Year: 3}
	if err := repos.StudentRepository.Create(ctx, jane); err != nil {
		return false, fmt.Errorf("error creating demo student: %w", err)
	}

	john := &appModels.Student{Name: "John Roe", Branch: "ME", Year: 2}
	if err := repos.StudentRepository.Create(ctx, john); err != nil {
		return false, fmt.Errorf("error creating demo student: %w", err)
	}

	placement := &appModels.Placement{StudentID: jane.ID, CompanyID: acme.ID}
	if err := repos.PlacementRepository.Create(ctx, placement); err != nil {
		return false, fmt.Errorf("error creating demo placement: %w", err)
	}

	lgr.Info().Msg("Demo data created")
	return true, nil
}

func storeIsEmpty(ctx context.Context, repos *appRepos.Repositories) (bool, error) {
	counters := []func(context.Context) (int64, error){
		repos.CompanyRepository.Count,
		repos.StudentRepository.Count,
		repos.PlacementRepository.Count,
	}
	for _, count := range counters {
		n, err := count(ctx)
		if err != nil {
			return false, fmt.Errorf("error checking existing data: %w", err)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}
