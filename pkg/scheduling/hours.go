package scheduling

import "time"

// WorkingWindow is the open/close pair and slot granularity of a single weekday
type WorkingWindow struct {
	Open        TimeOfDay
	Close       TimeOfDay
	Granularity int
}

// WorkingHoursFor maps a weekday to its working window. It returns nil for days
// the salon is closed. The table is a fixed business rule:
// Saturday closed, Friday 08:00-14:00, Sunday through Thursday 08:00-20:00,
// all at 30 minute granularity.
func WorkingHoursFor(weekday time.Weekday) *WorkingWindow {
	switch weekday {
	case time.Saturday:
		return nil
	case time.Friday:
		return &WorkingWindow{Open: 8 * 60, Close: 14 * 60, Granularity: 30}
	default:
		return &WorkingWindow{Open: 8 * 60, Close: 20 * 60, Granularity: 30}
	}
}
