package model

import "time"

// BookingLock is an advisory lock document keyed by car and slot. It narrows
// the window between the overlap re-check and the insert when two requests
// race for the same car; locks auto-expire via a TTL index.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
