package task

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the short form accepted on the command line.
const dateLayout = "2006-01-02"

// Day is a calendar date without a time of day. It is the partition key of
// the store and is comparable, so it can be used as a map key directly.
type Day struct {
	year  int
	month time.Month
	day   int
}

// DayOf returns the calendar date of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

// Today returns the current local date.
func Today() Day {
	return DayOf(time.Now())
}

// NewDay builds a Day, normalizing out-of-range values the way time.Date does.
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDay accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
// Timestamps are reduced to their calendar date in their own offset.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DayOf(t), nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DayOf(t), nil
	}
	return Day{}, fmt.Errorf("invalid day %q: want YYYY-MM-DD or RFC 3339", s)
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Year returns the year of d.
func (d Day) Year() int { return d.year }

// Month returns the month of d.
func (d Day) Month() time.Month { return d.month }

// Dom returns the day of the month.
func (d Day) Dom() int { return d.day }

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

// AddDays returns d shifted by n days.
func (d Day) AddDays(n int) Day {
	return NewDay(d.year, d.month, d.day+n)
}

// Before reports whether d is earlier than other.
func (d Day) Before(other Day) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// String returns the persisted key form, e.g. "2024-06-01T00:00:00Z".
func (d Day) String() string {
	return d.Time().Format(time.RFC3339)
}

// Date returns the short YYYY-MM-DD form.
func (d Day) Date() string {
	return d.Time().Format(dateLayout)
}
