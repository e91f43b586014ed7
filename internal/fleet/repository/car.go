package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	fleeterrors "carpool/internal/fleet/errors"
	"carpool/pkg/config"
	"carpool/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CarsCollectionName     = "Cars"
	BookingsCollectionName = "Bookings"
)

type CarRepository interface {
	FindAll(ctx context.Context) ([]model.Car, error)
	FindByID(ctx context.Context, id string) (*model.Car, error)
	Count(ctx context.Context) (int64, error)
}

type mongoCarRepository struct {
	cfg      *config.Config
	cars     *mongo.Collection
	bookings *mongo.Collection
}

func NewMongoCarRepository(cfg *config.Config) CarRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCarRepository{
		cfg:      cfg,
		cars:     db.Collection(CarsCollectionName),
		bookings: db.Collection(BookingsCollectionName),
	}
}

func (r *mongoCarRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

// FindAll returns the full fleet snapshot: every car with its bookings
// embedded in start-time order. The snapshot is the sole input to the
// availability and filtering pipeline.
func (r *mongoCarRepository) FindAll(ctx context.Context) ([]model.Car, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.cars.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []model.Car
	if err = cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode cars: %w", err)
	}

	byCar, err := r.bookingsByCar(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cars {
		cars[i].Bookings = byCar[cars[i].ID]
	}

	return cars, nil
}

func (r *mongoCarRepository) FindByID(ctx context.Context, id string) (*model.Car, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", fleeterrors.ErrInvalidID, id)
	}

	var car model.Car
	err = r.cars.FindOne(ctx, bson.M{"_id": objectID}).Decode(&car)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fleeterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find car: %w", err)
	}

	bookings, err := r.bookingsForCar(ctx, car.ID)
	if err != nil {
		return nil, err
	}
	car.Bookings = bookings

	return &car, nil
}

func (r *mongoCarRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.cars.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return count, nil
}

// bookingsByCar loads every booking grouped by car, each group ordered by
// start time so availability reporting stays deterministic.
func (r *mongoCarRepository) bookingsByCar(ctx context.Context) (map[string][]model.Booking, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "car_id", Value: 1},
		{Key: "start_time", Value: 1},
	})
	cursor, err := r.bookings.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	byCar := make(map[string][]model.Booking, len(bookings))
	for _, b := range bookings {
		byCar[b.CarID] = append(byCar[b.CarID], b)
	}
	return byCar, nil
}

func (r *mongoCarRepository) bookingsForCar(ctx context.Context, carID string) ([]model.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.bookings.Find(ctx, bson.M{"car_id": carID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings for car: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
