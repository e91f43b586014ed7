package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"carpool/pkg/interval"
	"carpool/pkg/model"
)

// Query runs the display pipeline over a fleet snapshot: apply the attribute
// filters, evaluate availability for the candidate range, then rank.
//
// Filtering never drops a car for being booked; unavailable cars are kept
// and sorted after available ones so the user still sees the whole matching
// fleet. Ranking is available-first, then make, then model (locale-aware
// compare), and stable, so cars tying on all keys keep snapshot order. The
// result is recomputed on every call; fleets are small and the answer is
// advisory anyway, corrected at admission time.
func Query(cars []model.Car, candidate *interval.Range, filters model.FilterSet) []model.CarAvailability {
	results := make([]model.CarAvailability, 0, len(cars))
	for _, car := range cars {
		if !filters.Matches(car) {
			continue
		}
		results = append(results, model.CarAvailability{
			Car:          car,
			Availability: EvaluateAvailability(candidate, car.Bookings),
		})
	}

	// Collators carry internal buffers and are not safe for concurrent use,
	// so each call gets its own.
	coll := collate.New(language.English)

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Availability.Available != b.Availability.Available {
			return a.Availability.Available
		}
		if cmp := coll.CompareString(a.Car.Make, b.Car.Make); cmp != 0 {
			return cmp < 0
		}
		return coll.CompareString(a.Car.Model, b.Car.Model) < 0
	})

	return results
}
