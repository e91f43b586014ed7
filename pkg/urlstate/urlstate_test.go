package urlstate

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"carpool/pkg/interval"
	"carpool/pkg/model"
)

func TestEncode_RoundTrip(t *testing.T) {
	r, err := interval.New(
		time.Date(2025, 12, 20, 15, 30, 0, 0, time.Local),
		time.Date(2025, 12, 22, 9, 0, 0, 0, time.Local),
	)
	if err != nil {
		t.Fatalf("interval.New: %v", err)
	}

	in := State{
		Range: &r,
		Filters: model.FilterSet{
			Makes: []string{"Tesla", "BMW"},
			Years: []int{2022, 2024},
			Seats: []int{5},
			Fuels: []string{"Electric"},
		},
	}

	values := Encode(in)

	if got := values.Get("start"); got != "20251220-1530" {
		t.Errorf("start = %q, want 20251220-1530", got)
	}
	if got := values.Get("end"); got != "20251222-0900" {
		t.Errorf("end = %q, want 20251222-0900", got)
	}
	if got := values.Get("brands"); got != "Tesla,BMW" {
		t.Errorf("brands = %q, want Tesla,BMW", got)
	}

	out := Decode(values)
	if out.Range == nil {
		t.Fatal("decoded range is nil")
	}
	if !out.Range.Start.Equal(r.Start) || !out.Range.End.Equal(r.End) {
		t.Errorf("decoded range %s, want %s", *out.Range, r)
	}
	if !reflect.DeepEqual(out.Filters, in.Filters) {
		t.Errorf("decoded filters %+v, want %+v", out.Filters, in.Filters)
	}
}

func TestEncode_OmitsEmptyFields(t *testing.T) {
	values := Encode(State{})
	if len(values) != 0 {
		t.Errorf("expected empty values, got %v", values)
	}
}

func TestDecode_ToleratesGarbage(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"malformed start", "start=20251301-9999&end=20251222-0900"},
		{"missing end", "start=20251220-1530"},
		{"start after end", "start=20251222-0900&end=20251220-1530"},
		{"empty query", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			s := Decode(values)
			if s.Range != nil {
				t.Errorf("expected nil range for %q, got %s", tt.query, *s.Range)
			}
		})
	}
}

func TestDecode_DropsNonNumericYears(t *testing.T) {
	values, _ := url.ParseQuery("years=2022,abc,2024&seats=five")
	s := Decode(values)
	if !reflect.DeepEqual(s.Filters.Years, []int{2022, 2024}) {
		t.Errorf("years = %v, want [2022 2024]", s.Filters.Years)
	}
	if s.Filters.Seats != nil {
		t.Errorf("seats = %v, want nil", s.Filters.Seats)
	}
}
