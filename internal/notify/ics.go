package notify

import (
	"fmt"
	"strings"
	"time"

	"carpool/pkg/model"
)

const icsStampLayout = "20060102T150405"

// BuildICS renders an iCalendar invite for a confirmed booking. Event times
// are emitted as floating local times, matching how the booking was entered.
func BuildICS(booking *model.Booking, car *model.Car) string {
	var b strings.Builder

	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:-//Carpool Booking//EN")
	writeLine("CALSCALE:GREGORIAN")
	writeLine("METHOD:REQUEST")
	writeLine("BEGIN:VEVENT")
	writeLine(fmt.Sprintf("UID:booking-%s@carpool", booking.ID))
	writeLine("DTSTAMP:" + time.Now().UTC().Format(icsStampLayout) + "Z")
	writeLine("DTSTART:" + booking.StartTime.Format(icsStampLayout))
	writeLine("DTEND:" + booking.EndTime.Format(icsStampLayout))
	writeLine(fmt.Sprintf("SUMMARY:Car Rental: %s %s", car.Make, car.Model))
	writeLine(fmt.Sprintf(
		"DESCRIPTION:Car Booking Confirmation\\n\\nVehicle: %s %s\\nLicense Plate: %s\\nBooked by: %s\\nConfirmation #: %s",
		car.Make, car.Model, car.LicensePlate, booking.BookedBy, booking.ID,
	))
	writeLine("STATUS:CONFIRMED")
	writeLine("SEQUENCE:0")
	writeLine("BEGIN:VALARM")
	writeLine("TRIGGER:-PT1H")
	writeLine("DESCRIPTION:Car booking reminder")
	writeLine("ACTION:DISPLAY")
	writeLine("END:VALARM")
	writeLine("END:VEVENT")
	writeLine("END:VCALENDAR")

	return b.String()
}
