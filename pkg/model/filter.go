package model

// FilterSet holds the active attribute filters for a fleet query. An empty
// slice means no constraint on that attribute. Within a field the selected
// values are alternatives (OR); a car must satisfy every non-empty field (AND).
type FilterSet struct {
	Makes []string `json:"makes,omitempty"`
	Years []int    `json:"years,omitempty"`
	Seats []int    `json:"seats,omitempty"`
	Fuels []string `json:"fuels,omitempty"`
}

// Empty reports whether no filter is active on any field.
func (f FilterSet) Empty() bool {
	return len(f.Makes) == 0 && len(f.Years) == 0 && len(f.Seats) == 0 && len(f.Fuels) == 0
}

// Matches reports whether the car passes every active filter. Availability
// is deliberately not considered here; unavailable cars are kept and merely
// sorted after available ones.
func (f FilterSet) Matches(car Car) bool {
	if len(f.Makes) > 0 && !containsString(f.Makes, car.Make) {
		return false
	}
	if len(f.Years) > 0 && !containsInt(f.Years, car.Year) {
		return false
	}
	if len(f.Seats) > 0 && !containsInt(f.Seats, car.Seats) {
		return false
	}
	if len(f.Fuels) > 0 && !containsString(f.Fuels, car.FuelType) {
		return false
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	for _, n := range values {
		if n == v {
			return true
		}
	}
	return false
}
