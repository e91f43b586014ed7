package service

import (
	"context"
	"errors"
	"sync"

	fleeterrors "carpool/internal/fleet/errors"
	"carpool/internal/fleet/repository"
	"carpool/pkg/config"
	apperrors "carpool/pkg/errors"
	"carpool/pkg/interval"
	"carpool/pkg/model"
)

type FleetService interface {
	GetAll(ctx context.Context) ([]model.Car, int64, error)
	GetByID(ctx context.Context, id string) (*model.Car, error)
	Search(ctx context.Context, candidate *interval.Range, filters model.FilterSet) ([]model.CarAvailability, error)
}

type fleetService struct {
	repo repository.CarRepository
	cfg  *config.Config
}

func NewFleetService(repo repository.CarRepository, cfg *config.Config) FleetService {
	return &fleetService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *fleetService) GetAll(ctx context.Context) ([]model.Car, int64, error) {
	var count int64
	var cars []model.Car
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count cars", "error", errCount)
			errCount = apperrors.Internal("Failed to count cars", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		cars, errFind = s.repo.FindAll(ctx)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list cars", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve cars", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return cars, count, nil
}

func (s *fleetService) GetByID(ctx context.Context, id string) (*model.Car, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Car ID cannot be empty")
	}

	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, fleeterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Car", id)
		}
		if errors.Is(err, fleeterrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid car ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve car", err)
	}

	return car, nil
}

// Search loads the current fleet snapshot and runs the filter/sort pipeline
// against the candidate range. The result reflects bookings as of this call;
// it may already be stale by the time the user submits, which is fine — the
// bookings service re-checks before every insert.
func (s *fleetService) Search(ctx context.Context, candidate *interval.Range, filters model.FilterSet) ([]model.CarAvailability, error) {
	cars, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to load fleet snapshot", "error", err)
		return nil, apperrors.Internal("Failed to retrieve cars", err)
	}

	results := Query(cars, candidate, filters)

	s.cfg.Log.Debug("Fleet search completed",
		"total_cars", len(cars),
		"matched", len(results),
		"has_range", candidate != nil,
	)
	return results, nil
}
