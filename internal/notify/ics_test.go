package notify

import (
	"strings"
	"testing"
	"time"

	"carpool/pkg/model"
)

func TestBuildICS(t *testing.T) {
	booking := &model.Booking{
		ID:        "68a1b2c3d4e5f6a7b8c9d0e1",
		CarID:     "68a1b2c3d4e5f6a7b8c9d0e2",
		StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
		EndTime:   time.Date(2026, 3, 10, 17, 30, 0, 0, time.Local),
		BookedBy:  "alice@example.com",
	}
	car := &model.Car{
		Make:         "Tesla",
		Model:        "Model 3",
		LicensePlate: "AB12345",
	}

	ics := BuildICS(booking, car)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"UID:booking-68a1b2c3d4e5f6a7b8c9d0e1@carpool",
		"DTSTART:20260310T090000",
		"DTEND:20260310T173000",
		"SUMMARY:Car Rental: Tesla Model 3",
		"License Plate: AB12345",
		"STATUS:CONFIRMED",
		"END:VCALENDAR",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("ICS missing %q:\n%s", want, ics)
		}
	}

	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS lines must be CRLF-terminated")
	}
}
