package events

import (
	"context"
	"time"

	"carpool/pkg/interval"
	kafkautil "carpool/pkg/kafka"
	"carpool/pkg/model"
)

const (
	TopicBookingCreated = "carpool.booking.created"
	DLQTopic            = "carpool.booking.dlq"

	EventTypeBookingCreated = "booking.created"

	SourceBookings = "bookings"
)

// BookingCreated is the event payload published after a booking is admitted.
// Times are serialized in the module's naive wall-clock layout so consumers
// never re-interpret them through a timezone.
type BookingCreated struct {
	BookingID string `json:"booking_id"`
	CarID     string `json:"car_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	BookedBy  string `json:"booked_by"`
	CreatedAt string `json:"created_at"`
}

// Publisher emits booking lifecycle events. The admission path treats
// publishing as best effort; a booking is committed before its event exists.
type Publisher interface {
	PublishBookingCreated(ctx context.Context, booking *model.Booking) error
}

type kafkaPublisher struct {
	producer *kafkautil.Producer
}

func NewKafkaPublisher(producer *kafkautil.Producer) Publisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) PublishBookingCreated(ctx context.Context, booking *model.Booking) error {
	payload := BookingCreated{
		BookingID: booking.ID,
		CarID:     booking.CarID,
		StartTime: booking.StartTime.Format(interval.Layout),
		EndTime:   booking.EndTime.Format(interval.Layout),
		BookedBy:  booking.BookedBy,
		CreatedAt: booking.CreatedAt.Format(time.RFC3339),
	}

	msg := kafkautil.NewMessage().
		WithKey(booking.CarID).
		WithValue(payload).
		WithEventType(EventTypeBookingCreated).
		WithSource(SourceBookings).
		Build()

	return p.producer.Publish(ctx, msg)
}
