package model

import "testing"

func testCar() Car {
	return Car{
		ID:       "car-1",
		Make:     "Tesla",
		Model:    "Model 3",
		Year:     2023,
		FuelType: FuelElectric,
		Seats:    5,
	}
}

func TestFilterSet_Empty(t *testing.T) {
	if !(FilterSet{}).Empty() {
		t.Error("zero-value FilterSet should be empty")
	}

	if (FilterSet{Makes: []string{"Tesla"}}).Empty() {
		t.Error("FilterSet with a make filter should not be empty")
	}

	if (FilterSet{Seats: []int{5}}).Empty() {
		t.Error("FilterSet with a seats filter should not be empty")
	}
}

func TestFilterSet_Matches(t *testing.T) {
	car := testCar()

	tests := []struct {
		name   string
		filter FilterSet
		want   bool
	}{
		{
			name:   "empty filter matches everything",
			filter: FilterSet{},
			want:   true,
		},
		{
			name:   "matching make",
			filter: FilterSet{Makes: []string{"Tesla"}},
			want:   true,
		},
		{
			name:   "non-matching make",
			filter: FilterSet{Makes: []string{"BMW"}},
			want:   false,
		},
		{
			name:   "values within a field are alternatives",
			filter: FilterSet{Makes: []string{"BMW", "Tesla"}},
			want:   true,
		},
		{
			name:   "fields combine with AND",
			filter: FilterSet{Makes: []string{"Tesla"}, Seats: []int{7}},
			want:   false,
		},
		{
			name: "all fields matching",
			filter: FilterSet{
				Makes: []string{"Tesla"},
				Years: []int{2023},
				Seats: []int{5},
				Fuels: []string{FuelElectric},
			},
			want: true,
		},
		{
			name:   "year mismatch",
			filter: FilterSet{Years: []int{2020, 2021}},
			want:   false,
		},
		{
			name:   "fuel mismatch",
			filter: FilterSet{Fuels: []string{FuelDiesel}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(car); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSet_MakeMatchIsCaseSensitive(t *testing.T) {
	// Filter values come from the catalog's own distinct values, so they
	// always carry catalog casing; free-text input never reaches here.
	car := testCar()
	if (FilterSet{Makes: []string{"tesla"}}).Matches(car) {
		t.Error("lowercased make should not match catalog casing")
	}
}
