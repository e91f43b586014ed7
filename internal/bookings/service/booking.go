package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingserrors "carpool/internal/bookings/errors"
	"carpool/internal/bookings/events"
	"carpool/internal/bookings/repository"
	"carpool/internal/bookings/validator"
	fleetservice "carpool/internal/fleet/service"
	"carpool/pkg/config"
	apperrors "carpool/pkg/errors"
	"carpool/pkg/interval"
	"carpool/pkg/model"
	"carpool/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	SearchByCar(ctx context.Context, carID string, startTime, endTime *time.Time, limit int, offset int64) ([]*model.Booking, int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create is the admission gate: the one place the no-overlap invariant is
// enforced. Whatever availability the client computed while browsing is
// advisory and may be stale; it is never trusted here. The overlap re-check
// and the insert run inside one transaction, with an advisory slot lock
// narrowing the race window between near-simultaneous submissions.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	exists, err := s.repo.CarExists(ctx, booking.CarID)
	if err != nil {
		return apperrors.Internal("Failed to verify car", err)
	}
	if !exists {
		return apperrors.Validation("Unknown car", map[string]any{
			"car_id": booking.CarID,
			"error":  bookingserrors.ErrUnknownCar.Error(),
		})
	}

	lockID, err := s.acquireSlotLock(ctx, booking.CarID, booking.StartTime)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyNoConflict(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return err
	}

	s.publishCreated(ctx, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"car_id", booking.CarID,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
		"booked_by", booking.BookedBy,
	)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) SearchByCar(ctx context.Context, carID string, startTime, endTime *time.Time, limit int, offset int64) ([]*model.Booking, int64, error) {
	if carID == "" {
		return nil, 0, apperrors.InvalidInput("CarID is required")
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByCar(ctx, carID, startTime, endTime)
		if err != nil {
			s.cfg.Log.Error("Failed to count bookings by search", "car_id", carID, "error", err)
			errCount = apperrors.Internal("Failed to count bookings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		bookings, err = s.repo.FindByCar(ctx, carID, startTime, endTime, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to search bookings", "car_id", carID, "error", err)
			errFind = apperrors.Internal("Failed to search bookings", err)
		}
	}()

	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	s.cfg.Log.Debug("Booking search completed",
		"car_id", carID,
		"count", len(bookings),
		"total_count", count,
	)
	return bookings, count, nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.BookedBy = sanitizer.NormalizeName(b.BookedBy)
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// verifyNoConflict re-loads the car's bookings as of this transaction and
// runs the same availability evaluation the fleet service uses for display.
// The narrowed repository scan only returns intervals intersecting the
// candidate, so any row it yields is a conflict; the evaluation keeps the
// check honest either way and picks the first conflict deterministically.
func (s *bookingService) verifyNoConflict(ctx context.Context, booking *model.Booking) error {
	const maxOverlapCheck = 30

	existing, err := s.repo.FindByCar(ctx, booking.CarID, &booking.StartTime, &booking.EndTime, maxOverlapCheck, 0)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	candidate := interval.Range{Start: booking.StartTime, End: booking.EndTime}
	others := make([]model.Booking, 0, len(existing))
	for _, b := range existing {
		if b.ID == booking.ID {
			continue
		}
		others = append(others, *b)
	}

	availability := fleetservice.EvaluateAvailability(&candidate, others)
	if !availability.Available {
		return apperrors.Conflict(fmt.Sprintf(
			"Car is already booked for %s - %s",
			booking.StartTime.Format(interval.Layout),
			booking.EndTime.Format(interval.Layout),
		)).WithDetails(map[string]any{
			"booked_by": availability.BookedBy,
		})
	}
	return nil
}

func (s *bookingService) publishCreated(ctx context.Context, booking *model.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishBookingCreated(ctx, booking); err != nil {
		// The booking is committed; a lost event only delays the confirmation
		// email, so log and move on.
		s.cfg.Log.Error("Failed to publish booking.created event",
			"booking_id", booking.ID,
			"error", err,
		)
	}
}

// acquireSlotLock creates an advisory lock for the car/slot pair. Returns
// conflict when another request currently holds the same slot.
func (s *bookingService) acquireSlotLock(ctx context.Context, carID string, startTime time.Time) (string, error) {
	lockID := fmt.Sprintf("booking_lock_%s_%d", carID, startTime.Unix())

	lock := &model.BookingLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(10 * time.Second),
	}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This time slot is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire booking lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}
