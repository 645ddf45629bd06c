package scheduling

import "time"

// SameDate checks if two times fall on the same calendar day
func SameDate(a time.Time, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	return aYear == bYear && aMonth == bMonth && aDay == bDay
}

// AvailableSlots filters the candidate slots of a date down to the ones a
// booking of the given duration can start at. A candidate survives when the
// interval [slot, slot+duration) overlaps none of the busy intervals, and,
// if the date is today relative to now, when the slot starts strictly after
// the current wall-clock time.
//
// The busy list must contain only non-cancelled appointments of the same date;
// status filtering happens upstream. An empty result is a normal business
// outcome, not a failure.
func AvailableSlots(date time.Time, durationMinutes int, busy []Interval, now time.Time) []TimeOfDay {
	available := []TimeOfDay{}

	if durationMinutes <= 0 {
		return available
	}

	isToday := SameDate(date, now)
	clock := TimeOfDayFromClock(now)

	for _, slot := range SlotsFor(date.Weekday()) {
		if isToday && slot <= clock {
			continue
		}

		candidate := Interval{Start: slot, End: slot.Add(durationMinutes)}

		conflict := false
		for _, interval := range busy {
			if candidate.Overlaps(interval) {
				conflict = true
				break
			}
		}

		if !conflict {
			available = append(available, slot)
		}
	}

	return available
}
