package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"carpool/internal/bookings/events"
	"carpool/pkg/interval"
	kafkautil "carpool/pkg/kafka"
	"carpool/pkg/logger"
	"carpool/pkg/model"
)

// CarLookup fetches car details for a booking event. Satisfied by
// client.FleetClient.
type CarLookup interface {
	GetCarByID(id string) (*model.Car, error)
}

// ConfirmationHandler consumes booking.created events and mails the renter
// a confirmation with a calendar invite attached.
type ConfirmationHandler struct {
	fleet  CarLookup
	sender Sender
	log    *logger.Logger
}

func NewConfirmationHandler(fleet CarLookup, sender Sender, log *logger.Logger) *ConfirmationHandler {
	return &ConfirmationHandler{
		fleet:  fleet,
		sender: sender,
		log:    log.Component("confirmations"),
	}
}

// Handle implements kafka.MessageHandler.
func (h *ConfirmationHandler) Handle(_ context.Context, msg kafkautil.Message) error {
	var event events.BookingCreated
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// Undecodable payloads will never succeed; let the consumer DLQ them.
		return fmt.Errorf("failed to decode booking.created event: %w", err)
	}

	start, err := time.ParseInLocation(interval.Layout, event.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start_time in event %s: %w", event.BookingID, err)
	}
	end, err := time.ParseInLocation(interval.Layout, event.EndTime, time.Local)
	if err != nil {
		return fmt.Errorf("invalid end_time in event %s: %w", event.BookingID, err)
	}

	// The renter identity doubles as the delivery address. Events booked
	// through channels without an email identity are skipped.
	if !strings.Contains(event.BookedBy, "@") {
		h.log.Info("Renter identity is not an email address, skipping confirmation",
			"booking_id", event.BookingID,
			"booked_by", event.BookedBy,
		)
		return nil
	}

	car, err := h.fleet.GetCarByID(event.CarID)
	if err != nil {
		return fmt.Errorf("failed to load car %s for booking %s: %w", event.CarID, event.BookingID, err)
	}

	booking := &model.Booking{
		ID:        event.BookingID,
		CarID:     event.CarID,
		StartTime: start,
		EndTime:   end,
		BookedBy:  event.BookedBy,
	}

	subject := fmt.Sprintf("Booking Confirmed - %s %s (#%s)", car.Make, car.Model, booking.ID)
	body := buildConfirmationBody(booking, car)
	ics := BuildICS(booking, car)

	if err := h.sender.Send(event.BookedBy, subject, body, ics); err != nil {
		return err
	}

	h.log.Info("Confirmation sent",
		"booking_id", booking.ID,
		"car_id", booking.CarID,
		"to", event.BookedBy,
	)
	return nil
}

const bodyTimeLayout = "Monday, January 2, 2006 at 3:04 PM"

func buildConfirmationBody(booking *model.Booking, car *model.Car) string {
	var b strings.Builder

	b.WriteString("<html><body style=\"font-family: Arial, sans-serif; color: #333;\">")
	b.WriteString("<h1>Booking Confirmed!</h1>")
	b.WriteString(fmt.Sprintf("<p>Hi %s,</p>", booking.BookedBy))
	b.WriteString("<p>Your car booking has been confirmed. Here are the details:</p>")
	b.WriteString("<h3>Vehicle Information</h3>")
	b.WriteString(fmt.Sprintf("<p><strong>Car:</strong> %s %s</p>", car.Make, car.Model))
	b.WriteString(fmt.Sprintf("<p><strong>License Plate:</strong> %s</p>", car.LicensePlate))
	b.WriteString(fmt.Sprintf("<p><strong>Confirmation #:</strong> %s</p>", booking.ID))
	b.WriteString("<h3>Rental Period</h3>")
	b.WriteString(fmt.Sprintf("<p><strong>Pickup:</strong> %s</p>", booking.StartTime.Format(bodyTimeLayout)))
	b.WriteString(fmt.Sprintf("<p><strong>Return:</strong> %s</p>", booking.EndTime.Format(bodyTimeLayout)))
	b.WriteString("<p>A calendar event has been attached to this email.</p>")
	b.WriteString("<p>This is an automated message. Please do not reply.</p>")
	b.WriteString("</body></html>")

	return b.String()
}
