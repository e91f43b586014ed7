package interval

import (
	"errors"
	"testing"
	"time"
)

func mustRange(t *testing.T, start, end string) Range {
	t.Helper()
	r, err := Parse(start, end)
	if err != nil {
		t.Fatalf("Parse(%q, %q): %v", start, end, err)
	}
	return r
}

func TestNew_RejectsDegenerateRanges(t *testing.T) {
	at := time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"start equals end", at, at},
		{"start after end", at.Add(time.Hour), at},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.start, tt.end)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("expected ErrInvalidRange, got %v", err)
			}
		})
	}
}

func TestParse_RejectsMalformedTimestamps(t *testing.T) {
	if _, err := Parse("2025-13-01T10:00", "2025-13-01T12:00"); err == nil {
		t.Error("expected error for invalid month")
	}
	if _, err := Parse("not-a-date", "2025-01-01T12:00"); err == nil {
		t.Error("expected error for garbage start")
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Range
		b    Range
		want bool
	}{
		{
			name: "identical ranges overlap",
			a:    mustRange(t, "2025-01-01T10:00", "2025-01-01T12:00"),
			b:    mustRange(t, "2025-01-01T10:00", "2025-01-01T12:00"),
			want: true,
		},
		{
			name: "partial overlap",
			a:    mustRange(t, "2025-01-01T10:00", "2025-01-01T12:00"),
			b:    mustRange(t, "2025-01-01T11:00", "2025-01-01T13:00"),
			want: true,
		},
		{
			name: "containment",
			a:    mustRange(t, "2025-01-01T09:00", "2025-01-01T18:00"),
			b:    mustRange(t, "2025-01-01T11:00", "2025-01-01T12:00"),
			want: true,
		},
		{
			name: "back-to-back ranges do not overlap",
			a:    mustRange(t, "2025-01-01T10:00", "2025-01-01T11:00"),
			b:    mustRange(t, "2025-01-01T11:00", "2025-01-01T12:00"),
			want: false,
		},
		{
			name: "disjoint ranges",
			a:    mustRange(t, "2025-01-01T08:00", "2025-01-01T09:00"),
			b:    mustRange(t, "2025-01-01T11:00", "2025-01-01T12:00"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestOverlaps_SelfOverlap(t *testing.T) {
	r := mustRange(t, "2025-06-10T09:00", "2025-06-10T17:30")
	if !Overlaps(r, r) {
		t.Error("a non-degenerate range must overlap itself")
	}
}
