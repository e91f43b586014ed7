package validator

import (
	"strings"
	"testing"
	"time"

	"carpool/pkg/logger"
	"carpool/pkg/model"
)

func testValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	}))
}

func validBooking() *model.Booking {
	return &model.Booking{
		CarID:     "68a1b2c3d4e5f6a7b8c9d0e2",
		StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
		EndTime:   time.Date(2026, 3, 10, 11, 0, 0, 0, time.Local),
		BookedBy:  "alice@example.com",
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := testValidator().Validate(validBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *model.Booking)
		wantMsg string
	}{
		{
			name:    "missing car",
			mutate:  func(b *model.Booking) { b.CarID = "" },
			wantMsg: "CarID is required",
		},
		{
			name:    "missing renter",
			mutate:  func(b *model.Booking) { b.BookedBy = "" },
			wantMsg: "BookedBy is required",
		},
		{
			name:    "renter too short",
			mutate:  func(b *model.Booking) { b.BookedBy = "a" },
			wantMsg: "BookedBy must be at least 2",
		},
		{
			name:    "end before start",
			mutate:  func(b *model.Booking) { b.EndTime = b.StartTime.Add(-time.Hour) },
			wantMsg: "EndTime must be after StartTime",
		},
		{
			name:    "zero-length interval",
			mutate:  func(b *model.Booking) { b.EndTime = b.StartTime },
			wantMsg: "EndTime",
		},
		{
			name:    "malformed id",
			mutate:  func(b *model.Booking) { b.ID = "not-hex" },
			wantMsg: "ID must be a valid MongoDB ObjectID",
		},
	}

	v := testValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)

			err := v.Validate(b)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
