package service

import (
	"testing"

	"carpool/pkg/interval"
	"carpool/pkg/model"
)

func fleet() []model.Car {
	return []model.Car{
		{
			ID: "a", Make: "Tesla", Model: "Model 3", Year: 2023, FuelType: model.FuelElectric, Seats: 5,
		},
		{
			ID: "b", Make: "BMW", Model: "X5", Year: 2022, FuelType: model.FuelDiesel, Seats: 5,
		},
		{
			ID: "c", Make: "Tesla", Model: "Model Y", Year: 2024, FuelType: model.FuelElectric, Seats: 7,
			Bookings: []model.Booking{
				{StartTime: day(9, 0), EndTime: day(17, 0), BookedBy: "Carol"},
			},
		},
	}
}

func ids(results []model.CarAvailability) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Car.ID
	}
	return out
}

func TestQuery_FilterKeepsBookedCars(t *testing.T) {
	candidate := &interval.Range{Start: day(10, 0), End: day(12, 0)}
	filters := model.FilterSet{Makes: []string{"Tesla"}}

	results := Query(fleet(), candidate, filters)

	got := ids(results)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("expected [a c], got %v", got)
	}
	if !results[0].Availability.Available {
		t.Error("expected car a available")
	}
	if results[1].Availability.Available {
		t.Error("expected car c unavailable, it is booked over the candidate")
	}
	if results[1].Availability.BookedBy != "Carol" {
		t.Errorf("expected conflict attributed to Carol, got %q", results[1].Availability.BookedBy)
	}
}

func TestQuery_AvailableFirstThenMakeModel(t *testing.T) {
	candidate := &interval.Range{Start: day(10, 0), End: day(12, 0)}

	results := Query(fleet(), candidate, model.FilterSet{})

	// b (BMW, free) before a (Tesla, free); booked c sinks to the end.
	got := ids(results)
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestQuery_NoCandidateAllUnavailable(t *testing.T) {
	results := Query(fleet(), nil, model.FilterSet{})

	for _, r := range results {
		if r.Availability.Available {
			t.Errorf("car %s reported available without a candidate range", r.Car.ID)
		}
	}
}

func TestQuery_AndAcrossFieldsOrWithin(t *testing.T) {
	filters := model.FilterSet{
		Makes: []string{"Tesla", "BMW"},
		Seats: []int{7},
	}

	results := Query(fleet(), nil, filters)

	got := ids(results)
	if len(got) != 1 || got[0] != "c" {
		t.Fatalf("expected only car c to match, got %v", got)
	}
}

func TestQuery_Deterministic(t *testing.T) {
	candidate := &interval.Range{Start: day(10, 0), End: day(12, 0)}

	first := ids(Query(fleet(), candidate, model.FilterSet{}))
	for i := 0; i < 10; i++ {
		again := ids(Query(fleet(), candidate, model.FilterSet{}))
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("iteration %d: order changed from %v to %v", i, first, again)
			}
		}
	}
}
