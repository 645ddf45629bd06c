package scheduling

import (
	"reflect"
	"testing"
	"time"
)

func TestWorkingHoursFor(t *testing.T) {
	var hoursTests = []struct {
		weekday time.Weekday
		out     *WorkingWindow
	}{
		{
			// Case regular weekday
			time.Sunday,
			&WorkingWindow{Open: 8 * 60, Close: 20 * 60, Granularity: 30},
		},
		{
			// Case regular weekday mid-week
			time.Wednesday,
			&WorkingWindow{Open: 8 * 60, Close: 20 * 60, Granularity: 30},
		},
		{
			// Case short Friday
			time.Friday,
			&WorkingWindow{Open: 8 * 60, Close: 14 * 60, Granularity: 30},
		},
		{
			// Case closed Saturday
			time.Saturday,
			nil,
		},
	}

	for _, tt := range hoursTests {
		window := WorkingHoursFor(tt.weekday)
		if !reflect.DeepEqual(window, tt.out) {
			t.Errorf("WorkingHoursFor(%s): got %v, want %v", tt.weekday, window, tt.out)
		}
	}
}

func TestSlotsFor(t *testing.T) {
	var slotsTests = []struct {
		weekday time.Weekday
		count   int
		first   string
		last    string
	}{
		{
			// Case regular weekday has 24 half hour slots
			time.Sunday, 24, "08:00", "19:30",
		},
		{
			// Case Thursday too
			time.Thursday, 24, "08:00", "19:30",
		},
		{
			// Case Friday has 12 half hour slots
			time.Friday, 12, "08:00", "13:30",
		},
	}

	for _, tt := range slotsTests {
		slots := SlotsFor(tt.weekday)
		if len(slots) != tt.count {
			t.Errorf("SlotsFor(%s): got %d slots, want %d", tt.weekday, len(slots), tt.count)
			continue
		}

		if slots[0].String() != tt.first {
			t.Errorf("SlotsFor(%s): first slot %s, want %s", tt.weekday, slots[0], tt.first)
		}

		if slots[len(slots)-1].String() != tt.last {
			t.Errorf("SlotsFor(%s): last slot %s, want %s", tt.weekday, slots[len(slots)-1], tt.last)
		}
	}
}

func TestSlotsForClosedDay(t *testing.T) {
	slots := SlotsFor(time.Saturday)
	if slots == nil {
		t.Errorf("SlotsFor(Saturday): got nil, want empty slice")
	}
	if len(slots) != 0 {
		t.Errorf("SlotsFor(Saturday): got %d slots, want 0", len(slots))
	}
}
