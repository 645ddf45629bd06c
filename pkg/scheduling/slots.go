package scheduling

import "time"

// SlotsFor enumerates the candidate booking start times of a weekday in
// ascending order. The sequence covers [open, close) at the window's
// granularity, so the last slot starts one granularity step before closing.
// A closed day yields an empty sequence.
func SlotsFor(weekday time.Weekday) []TimeOfDay {
	window := WorkingHoursFor(weekday)
	if window == nil {
		return []TimeOfDay{}
	}

	slots := make([]TimeOfDay, 0, int(window.Close-window.Open)/window.Granularity)
	for slot := window.Open; slot < window.Close; slot = slot.Add(window.Granularity) {
		slots = append(slots, slot)
	}

	return slots
}
