package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"carpool/internal/bookings/repository"
	"carpool/internal/bookings/validator"
	"carpool/pkg/config"
	apperrors "carpool/pkg/errors"
	"carpool/pkg/logger"
	"carpool/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"

	mongotx "carpool/pkg/db/mongo"
)

const testCarID = "68a1b2c3d4e5f6a7b8c9d0e2"

func day(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.Local)
}

// fakeBookingRepository keeps bookings in memory and runs "transactions" under
// a mutex, which gives the same serialization the Mongo transaction provides.
type fakeBookingRepository struct {
	mu       sync.Mutex
	bookings []*model.Booking
	carIDs   map[string]bool
}

func newFakeBookingRepository(carIDs ...string) *fakeBookingRepository {
	known := make(map[string]bool, len(carIDs))
	for _, id := range carIDs {
		known[id] = true
	}
	return &fakeBookingRepository{carIDs: known}
}

var _ repository.BookingRepository = (*fakeBookingRepository)(nil)

func (f *fakeBookingRepository) Create(_ context.Context, booking *model.Booking) error {
	booking.ID = "fake-id"
	booking.CreatedAt = time.Now()
	copied := *booking
	f.bookings = append(f.bookings, &copied)
	return nil
}

func (f *fakeBookingRepository) FindByID(_ context.Context, id string) (*model.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepository) FindAll(_ context.Context, limit int, offset int64) ([]*model.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepository) FindByCar(_ context.Context, carID string, startTime, endTime *time.Time, limit int, offset int64) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range f.bookings {
		if b.CarID != carID {
			continue
		}
		if startTime != nil && !b.EndTime.After(*startTime) {
			continue
		}
		if endTime != nil && !b.StartTime.Before(*endTime) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepository) CountByCar(_ context.Context, carID string, startTime, endTime *time.Time) (int64, error) {
	found, _ := f.FindByCar(context.Background(), carID, startTime, endTime, 0, 0)
	return int64(len(found)), nil
}

func (f *fakeBookingRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepository) CarExists(_ context.Context, carID string) (bool, error) {
	return f.carIDs[carID], nil
}

func (f *fakeBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(mongo.SessionContext(nil))
}

// fakeLockRepository mimics the unique _id constraint of the lock collection.
type fakeLockRepository struct {
	mu    sync.Mutex
	locks map[string]bool
}

func newFakeLockRepository() *fakeLockRepository {
	return &fakeLockRepository{locks: make(map[string]bool)}
}

func (f *fakeLockRepository) Create(_ context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locks[lock.ID] {
		return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	f.locks[lock.ID] = true
	return lock, nil
}

func (f *fakeLockRepository) Delete(_ context.Context, lockID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.locks, lockID)
	return nil
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

func newTestService(repo repository.BookingRepository, locks repository.BookingLockRepository) BookingService {
	cfg := testConfig()
	return NewBookingService(repo, locks, validator.NewBookingValidator(cfg.Log), nil, cfg)
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeBookingRepository(testCarID)
	svc := newTestService(repo, newFakeLockRepository())

	booking := &model.Booking{
		CarID:     testCarID,
		StartTime: day(9, 0),
		EndTime:   day(11, 0),
		BookedBy:  "alice@example.com",
	}

	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.bookings))
	}
	if booking.ID == "" {
		t.Error("expected booking ID to be assigned")
	}
}

func TestCreate_ValidationFailureStoresNothing(t *testing.T) {
	repo := newFakeBookingRepository(testCarID)
	svc := newTestService(repo, newFakeLockRepository())

	booking := &model.Booking{
		CarID:     testCarID,
		StartTime: day(11, 0),
		EndTime:   day(9, 0), // inverted
		BookedBy:  "alice@example.com",
	}

	err := svc.Create(context.Background(), booking)
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected %s, got %s", apperrors.CodeValidation, appErr.Code)
	}
	if len(repo.bookings) != 0 {
		t.Errorf("expected no stored bookings after validation failure, got %d", len(repo.bookings))
	}
}

func TestCreate_UnknownCar(t *testing.T) {
	repo := newFakeBookingRepository() // no known cars
	svc := newTestService(repo, newFakeLockRepository())

	booking := &model.Booking{
		CarID:     testCarID,
		StartTime: day(9, 0),
		EndTime:   day(11, 0),
		BookedBy:  "alice@example.com",
	}

	err := svc.Create(context.Background(), booking)
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected %s for unknown car, got %s", apperrors.CodeValidation, appErr.Code)
	}
}

func TestCreate_ConflictReportsHolder(t *testing.T) {
	repo := newFakeBookingRepository(testCarID)
	svc := newTestService(repo, newFakeLockRepository())

	first := &model.Booking{
		CarID:     testCarID,
		StartTime: day(9, 0),
		EndTime:   day(11, 0),
		BookedBy:  "alice@example.com",
	}
	if err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("seeding booking failed: %v", err)
	}

	second := &model.Booking{
		CarID:     testCarID,
		StartTime: day(10, 0),
		EndTime:   day(12, 0),
		BookedBy:  "bob@example.com",
	}

	err := svc.Create(context.Background(), second)
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Fatalf("expected %s, got %s", apperrors.CodeConflict, appErr.Code)
	}
	if appErr.Details["booked_by"] != "alice@example.com" {
		t.Errorf("expected conflict attributed to alice@example.com, got %v", appErr.Details["booked_by"])
	}
	if len(repo.bookings) != 1 {
		t.Errorf("expected the conflicting booking to be rejected, store has %d", len(repo.bookings))
	}
}

func TestCreate_BackToBackAllowed(t *testing.T) {
	repo := newFakeBookingRepository(testCarID)
	svc := newTestService(repo, newFakeLockRepository())

	first := &model.Booking{
		CarID:     testCarID,
		StartTime: day(9, 0),
		EndTime:   day(11, 0),
		BookedBy:  "alice@example.com",
	}
	if err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("seeding booking failed: %v", err)
	}

	second := &model.Booking{
		CarID:     testCarID,
		StartTime: day(11, 0),
		EndTime:   day(13, 0),
		BookedBy:  "bob@example.com",
	}
	if err := svc.Create(context.Background(), second); err != nil {
		t.Fatalf("back-to-back booking should be admitted: %v", err)
	}
	if len(repo.bookings) != 2 {
		t.Errorf("expected 2 stored bookings, got %d", len(repo.bookings))
	}
}

func TestCreate_ConcurrentSameSlotAdmitsOne(t *testing.T) {
	repo := newFakeBookingRepository(testCarID)
	svc := newTestService(repo, newFakeLockRepository())

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			booking := &model.Booking{
				CarID:     testCarID,
				StartTime: day(9, 0),
				EndTime:   day(11, 0),
				BookedBy:  "racer@example.com",
			}
			errs[i] = svc.Create(context.Background(), booking)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for i, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		appErr := apperrors.AsAppError(err)
		if appErr.Code != apperrors.CodeConflict {
			t.Errorf("attempt %d: expected %s, got %s", i, apperrors.CodeConflict, appErr.Code)
		}
	}

	if succeeded != 1 {
		t.Errorf("expected exactly one admission, got %d", succeeded)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("expected 1 stored booking, got %d", len(repo.bookings))
	}
}

func TestCreate_SanitizesRenterName(t *testing.T) {
	repo := newFakeBookingRepository(testCarID)
	svc := newTestService(repo, newFakeLockRepository())

	booking := &model.Booking{
		CarID:     testCarID,
		StartTime: day(9, 0),
		EndTime:   day(11, 0),
		BookedBy:  "  Alice \t Smith  ",
	}

	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.BookedBy != "Alice Smith" {
		t.Errorf("expected normalized renter name, got %q", booking.BookedBy)
	}
}
