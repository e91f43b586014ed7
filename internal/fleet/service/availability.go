package service

import (
	"carpool/pkg/interval"
	"carpool/pkg/model"
)

// EvaluateAvailability decides whether a car is bookable for the candidate
// range given its existing bookings.
//
// A nil candidate means the user has not picked dates yet; every car is
// reported unavailable until an explicit range is chosen. When several
// bookings overlap the candidate (which the admission invariant should rule
// out), the first one in stored order is reported so the answer stays
// deterministic.
func EvaluateAvailability(candidate *interval.Range, bookings []model.Booking) model.Availability {
	if candidate == nil || !candidate.Valid() {
		return model.Availability{Available: false}
	}

	for _, b := range bookings {
		existing := interval.Range{Start: b.StartTime, End: b.EndTime}
		if interval.Overlaps(*candidate, existing) {
			return model.Availability{Available: false, BookedBy: b.BookedBy}
		}
	}

	return model.Availability{Available: true}
}
