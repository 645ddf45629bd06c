package scheduling

import (
	"reflect"
	"testing"
	"time"
)

func timeDate(year int, month time.Month, day int, hour int, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

func mustParse(t *testing.T, values ...string) []TimeOfDay {
	t.Helper()

	parsed := make([]TimeOfDay, 0, len(values))
	for _, value := range values {
		tod, err := ParseTimeOfDay(value)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%s): %v", value, err)
		}
		parsed = append(parsed, tod)
	}

	return parsed
}

func TestAvailableSlots(t *testing.T) {
	// 2026-01-02 is a Friday, 2026-01-03 a Saturday, 2026-01-04 a Sunday
	friday := timeDate(2026, 1, 2, 0, 0)
	saturday := timeDate(2026, 1, 3, 0, 0)
	sunday := timeDate(2026, 1, 4, 0, 0)

	// now on a different day, so no same-day filtering kicks in
	later := timeDate(2025, 12, 1, 12, 0)

	var availabilityTests = []struct {
		name     string
		date     time.Time
		duration int
		busy     []Interval
		now      time.Time
		out      []TimeOfDay
	}{
		{
			// Case existing 10:00-11:00 appointment on a Friday
			"friday with one appointment",
			friday, 30,
			[]Interval{{Start: 10 * 60, End: 11 * 60}},
			later,
			mustParse(t, "08:00", "08:30", "09:00", "09:30", "11:00", "11:30",
				"12:00", "12:30", "13:00", "13:30"),
		},
		{
			// Case 60 minute booking cannot start a half hour before a busy block
			"long booking before appointment",
			friday, 60,
			[]Interval{{Start: 10 * 60, End: 11 * 60}},
			later,
			mustParse(t, "08:00", "08:30", "09:00", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30"),
		},
		{
			// Case closed Saturday
			"saturday",
			saturday, 30,
			nil,
			later,
			[]TimeOfDay{},
		},
		{
			// Case zero duration yields nothing
			"zero duration",
			sunday, 0,
			nil,
			later,
			[]TimeOfDay{},
		},
		{
			// Case fully booked day
			"fully booked",
			sunday, 30,
			[]Interval{{Start: 8 * 60, End: 20 * 60}},
			later,
			[]TimeOfDay{},
		},
	}

	for _, tt := range availabilityTests {
		got := AvailableSlots(tt.date, tt.duration, tt.busy, tt.now)
		if !reflect.DeepEqual(got, tt.out) {
			t.Errorf("AvailableSlots %s: got %v, want %v", tt.name, got, tt.out)
		}
	}
}

func TestAvailableSlotsToday(t *testing.T) {
	sunday := timeDate(2026, 1, 4, 0, 0)

	// At 15:00 on the same day only slots strictly after 15:00 remain
	now := timeDate(2026, 1, 4, 15, 0)

	got := AvailableSlots(sunday, 30, nil, now)
	want := mustParse(t, "15:30", "16:00", "16:30", "17:00", "17:30",
		"18:00", "18:30", "19:00", "19:30")

	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSlots today at 15:00: got %v, want %v", got, want)
	}

	// The 15:00 slot itself is excluded even though it has not fully passed
	for _, slot := range got {
		if slot.String() == "15:00" {
			t.Errorf("AvailableSlots today must exclude the current slot")
		}
	}
}

func TestAvailableSlotsFridayClosing(t *testing.T) {
	friday := timeDate(2026, 1, 2, 0, 0)
	later := timeDate(2025, 12, 1, 12, 0)

	// A 60 minute booking at 13:30 would run past closing, but the candidate
	// sequence stops at the last slot before close, not before close-duration
	got := AvailableSlots(friday, 30, nil, later)

	if got[len(got)-1].String() != "13:30" {
		t.Errorf("last Friday slot: got %s, want 13:30", got[len(got)-1])
	}
}

func TestSameDate(t *testing.T) {
	a := timeDate(2026, 1, 4, 8, 0)
	b := timeDate(2026, 1, 4, 23, 59)
	c := timeDate(2026, 1, 5, 0, 0)

	if !SameDate(a, b) {
		t.Errorf("SameDate(%v, %v): got false, want true", a, b)
	}

	if SameDate(a, c) {
		t.Errorf("SameDate(%v, %v): got true, want false", a, c)
	}
}
