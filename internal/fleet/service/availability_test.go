package service

import (
	"testing"
	"time"

	"carpool/pkg/interval"
	"carpool/pkg/model"
)

func day(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.Local)
}

func TestEvaluateAvailability_NoDatesSelected(t *testing.T) {
	bookings := []model.Booking{
		{StartTime: day(9, 0), EndTime: day(11, 0), BookedBy: "Alice"},
	}

	got := EvaluateAvailability(nil, bookings)
	if got.Available {
		t.Error("expected unavailable when no candidate range is given")
	}
	if got.BookedBy != "" {
		t.Errorf("expected no conflicting renter, got %q", got.BookedBy)
	}

	// Even a car with zero bookings is unavailable without dates.
	got = EvaluateAvailability(nil, nil)
	if got.Available {
		t.Error("expected unavailable for empty schedule without candidate range")
	}
}

func TestEvaluateAvailability_ConflictReportsRenter(t *testing.T) {
	bookings := []model.Booking{
		{StartTime: day(9, 0), EndTime: day(11, 0), BookedBy: "Alice"},
	}
	candidate := &interval.Range{Start: day(10, 0), End: day(12, 0)}

	got := EvaluateAvailability(candidate, bookings)
	if got.Available {
		t.Error("expected conflict for overlapping candidate")
	}
	if got.BookedBy != "Alice" {
		t.Errorf("expected conflict attributed to Alice, got %q", got.BookedBy)
	}
}

func TestEvaluateAvailability_TouchingBoundaryIsFree(t *testing.T) {
	bookings := []model.Booking{
		{StartTime: day(9, 0), EndTime: day(11, 0), BookedBy: "Alice"},
	}

	// Back-to-back with the existing booking on either side.
	for _, candidate := range []interval.Range{
		{Start: day(11, 0), End: day(13, 0)},
		{Start: day(7, 0), End: day(9, 0)},
	} {
		got := EvaluateAvailability(&candidate, bookings)
		if !got.Available {
			t.Errorf("expected %s available, conflict reported with %q", candidate, got.BookedBy)
		}
	}
}

func TestEvaluateAvailability_FirstConflictInStoredOrder(t *testing.T) {
	bookings := []model.Booking{
		{StartTime: day(9, 0), EndTime: day(12, 0), BookedBy: "Alice"},
		{StartTime: day(10, 0), EndTime: day(13, 0), BookedBy: "Bob"},
	}
	candidate := &interval.Range{Start: day(10, 30), End: day(11, 30)}

	for i := 0; i < 10; i++ {
		got := EvaluateAvailability(candidate, bookings)
		if got.BookedBy != "Alice" {
			t.Fatalf("iteration %d: expected first stored conflict (Alice), got %q", i, got.BookedBy)
		}
	}
}

func TestEvaluateAvailability_InvalidCandidate(t *testing.T) {
	candidate := &interval.Range{Start: day(12, 0), End: day(10, 0)}

	got := EvaluateAvailability(candidate, nil)
	if got.Available {
		t.Error("expected unavailable for inverted candidate range")
	}
}
