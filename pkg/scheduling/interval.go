package scheduling

import "fmt"

// Interval is a half-open [Start, End) wall-clock interval within one calendar
// day. Appointments never span midnight.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval builds an Interval from "HH:MM" strings
func NewInterval(start string, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}

	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: s, End: e}, nil
}

// Duration returns the interval length in minutes
func (i Interval) Duration() int {
	return int(i.End - i.Start)
}

// IsStartBeforeEnd checks if start is earlier than end
func (i Interval) IsStartBeforeEnd() bool {
	return i.Start < i.End
}

// Overlaps checks if two intervals on the same date share any open
// sub-interval. Back-to-back intervals, where one ends exactly when the other
// starts, do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// String prints an interval string
func (i Interval) String() string {
	return fmt.Sprintf("%s - %s", i.Start, i.End)
}
