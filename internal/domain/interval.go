package domain

import (
	"fmt"
	"time"
)

// Interval half-open time range [Start, End) within one calendar day, UTC,
// truncated to the minute
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval normalizes and validates an interval.
// Zero-length, reversed and midnight-crossing intervals are rejected
func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: Normalize(start), End: Normalize(end)}

	if iv.Start.IsZero() || iv.End.IsZero() {
		return Interval{}, fmt.Errorf("%w: start and end are required", ErrValidation)
	}
	if !iv.Start.Before(iv.End) {
		return Interval{}, fmt.Errorf("%w: start %s must be before end %s",
			ErrValidation, iv.Start.Format(TimeFormat), iv.End.Format(TimeFormat))
	}
	if !DayOf(iv.Start).Equal(DayOf(iv.End)) {
		return Interval{}, fmt.Errorf("%w: interval must not cross midnight", ErrValidation)
	}

	return iv, nil
}

// Normalize converts to UTC and drops seconds and sub-second parts
func Normalize(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC().Truncate(time.Minute)
}

// DayOf midnight UTC of the day t belongs to
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Day calendar day of the interval
func (iv Interval) Day() time.Time {
	return DayOf(iv.Start)
}

// Duration length of the interval
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps strict half-open intersection: touching boundaries do not overlap
func (iv Interval) Overlaps(other Interval) bool {
	return other.Start.Before(iv.End) && other.End.After(iv.Start)
}

// Window "HH:MM - HH:MM"
func (iv Interval) Window() string {
	return fmt.Sprintf("%s - %s", iv.Start.Format(TimeFormat), iv.End.Format(TimeFormat))
}

// FindOverlaps returns occupied slots of the same day intersecting iv
func FindOverlaps(slots []*Slot, iv Interval) []*Slot {
	day := iv.Day()
	result := make([]*Slot, 0)
	for _, s := range slots {
		if !s.Occupied || !DayOf(s.Day).Equal(day) {
			continue
		}
		if s.Interval().Overlaps(iv) {
			result = append(result, s)
		}
	}
	return result
}
