package service

import (
	"context"
	"errors"
	"testing"

	fleeterrors "carpool/internal/fleet/errors"
	"carpool/pkg/config"
	apperrors "carpool/pkg/errors"
	"carpool/pkg/interval"
	"carpool/pkg/logger"
	"carpool/pkg/model"
)

// Mock repository for testing
type mockCarRepository struct {
	findAllFunc  func(ctx context.Context) ([]model.Car, error)
	findByIDFunc func(ctx context.Context, id string) (*model.Car, error)
	countFunc    func(ctx context.Context) (int64, error)
}

func (m *mockCarRepository) FindAll(ctx context.Context) ([]model.Car, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []model.Car{}, nil
}

func (m *mockCarRepository) FindByID(ctx context.Context, id string) (*model.Car, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, fleeterrors.ErrNotFound
}

func (m *mockCarRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func TestGetAll(t *testing.T) {
	mockRepo := &mockCarRepository{
		countFunc: func(ctx context.Context) (int64, error) {
			return 3, nil
		},
		findAllFunc: func(ctx context.Context) ([]model.Car, error) {
			return fleet(), nil
		},
	}

	svc := NewFleetService(mockRepo, testConfig())

	cars, count, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
	if len(cars) != 3 {
		t.Errorf("expected 3 cars, got %d", len(cars))
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewFleetService(&mockCarRepository{}, testConfig())

	_, err := svc.GetByID(context.Background(), "68a1b2c3d4e5f6a7b8c9d0e1")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected %s, got %s", apperrors.CodeNotFound, appErr.Code)
	}
}

func TestGetByID_InvalidID(t *testing.T) {
	mockRepo := &mockCarRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Car, error) {
			return nil, fleeterrors.ErrInvalidID
		},
	}
	svc := NewFleetService(mockRepo, testConfig())

	_, err := svc.GetByID(context.Background(), "not-an-object-id")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected %s, got %s", apperrors.CodeInvalidInput, appErr.Code)
	}
}

func TestSearch_RunsPipelineOverSnapshot(t *testing.T) {
	mockRepo := &mockCarRepository{
		findAllFunc: func(ctx context.Context) ([]model.Car, error) {
			return fleet(), nil
		},
	}
	svc := NewFleetService(mockRepo, testConfig())

	candidate := &interval.Range{Start: day(10, 0), End: day(12, 0)}
	results, err := svc.Search(context.Background(), candidate, model.FilterSet{Makes: []string{"Tesla"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 Teslas, got %d", len(results))
	}
	if !results[0].Availability.Available || results[1].Availability.Available {
		t.Error("expected available Tesla ranked before the booked one")
	}
}

func TestSearch_RepositoryError(t *testing.T) {
	mockRepo := &mockCarRepository{
		findAllFunc: func(ctx context.Context) ([]model.Car, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewFleetService(mockRepo, testConfig())

	_, err := svc.Search(context.Background(), nil, model.FilterSet{})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInternal {
		t.Errorf("expected %s, got %s", apperrors.CodeInternal, appErr.Code)
	}
}
