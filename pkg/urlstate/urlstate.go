// Package urlstate encodes the candidate date range and active filters
// to and from URL query parameters so filtered views stay shareable.
// Dates use a compact YYYYMMDD-HHMM form (e.g. 20251220-1530) instead of
// raw ISO strings for readability; filter fields are comma-joined lists.
package urlstate

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"carpool/pkg/interval"
	"carpool/pkg/model"
)

const dateLayout = "20060102-1504"

const (
	paramStart  = "start"
	paramEnd    = "end"
	paramBrands = "brands"
	paramYears  = "years"
	paramSeats  = "seats"
	paramFuels  = "fuels"
)

// State is the browsing state carried in the URL: the candidate range the
// user picked (nil until both dates are chosen) and the active filters.
type State struct {
	Range   *interval.Range
	Filters model.FilterSet
}

// Encode serializes the state into query values. Unset fields are omitted
// so shared links stay clean.
func Encode(s State) url.Values {
	values := url.Values{}
	if s.Range != nil {
		values.Set(paramStart, s.Range.Start.Format(dateLayout))
		values.Set(paramEnd, s.Range.End.Format(dateLayout))
	}
	if len(s.Filters.Makes) > 0 {
		values.Set(paramBrands, strings.Join(s.Filters.Makes, ","))
	}
	if len(s.Filters.Years) > 0 {
		values.Set(paramYears, joinInts(s.Filters.Years))
	}
	if len(s.Filters.Seats) > 0 {
		values.Set(paramSeats, joinInts(s.Filters.Seats))
	}
	if len(s.Filters.Fuels) > 0 {
		values.Set(paramFuels, strings.Join(s.Filters.Fuels, ","))
	}
	return values
}

// Decode parses query values back into a State. Malformed or partial date
// parameters leave Range nil and garbled list entries are dropped; a shared
// link never fails hard, it just degrades to fewer constraints.
func Decode(values url.Values) State {
	s := State{
		Filters: model.FilterSet{
			Makes: splitList(values.Get(paramBrands)),
			Years: splitIntList(values.Get(paramYears)),
			Seats: splitIntList(values.Get(paramSeats)),
			Fuels: splitList(values.Get(paramFuels)),
		},
	}

	start, okStart := parseDate(values.Get(paramStart))
	end, okEnd := parseDate(values.Get(paramEnd))
	if okStart && okEnd {
		if r, err := interval.New(start, end); err == nil {
			s.Range = &r
		}
	}
	return s
}

func parseDate(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func splitIntList(v string) []int {
	var out []int
	for _, part := range splitList(v) {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, n := range values {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
