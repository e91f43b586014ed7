package model

import (
	"time"
)

// Booking reserves a car for the half-open interval [StartTime, EndTime).
// Per car, no two bookings may overlap; the bookings service enforces that
// invariant on every insert. Bookings are never mutated after creation.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	CarID     string    `json:"car_id" bson:"car_id" validate:"required"`
	StartTime time.Time `json:"start_time" bson:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" bson:"end_time" validate:"required,gtfield=StartTime"`
	BookedBy  string    `json:"booked_by" bson:"booked_by" validate:"required,min=2,max=100"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at" validate:"omitempty"`
}
