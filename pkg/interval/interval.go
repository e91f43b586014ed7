package interval

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the wire format for booking timestamps. Times are naive local
// wall-clock values; no timezone conversion happens anywhere in this module.
const Layout = "2006-01-02T15:04"

var ErrInvalidRange = errors.New("range start must be before end")

// Range is a half-open time interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a Range, rejecting degenerate input (start >= end).
func New(start, end time.Time) (Range, error) {
	if !start.Before(end) {
		return Range{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidRange,
			start.Format(Layout), end.Format(Layout))
	}
	return Range{Start: start, End: end}, nil
}

// Parse builds a Range from two wall-clock strings in Layout format.
func Parse(start, end string) (Range, error) {
	s, err := time.ParseInLocation(Layout, start, time.Local)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	e, err := time.ParseInLocation(Layout, end, time.Local)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end time %q: %w", end, err)
	}
	return New(s, e)
}

// Valid reports whether the range is well-formed.
func (r Range) Valid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether two half-open ranges intersect. Touching
// endpoints (a.End == b.Start) do not count as overlap, so back-to-back
// bookings are allowed.
func Overlaps(a, b Range) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(Layout), r.End.Format(Layout))
}
