package scheduling

import (
	"testing"
)

func mustInterval(t *testing.T, start string, end string) Interval {
	t.Helper()

	interval, err := NewInterval(start, end)
	if err != nil {
		t.Fatalf("NewInterval(%s, %s): %v", start, end, err)
	}

	return interval
}

func TestInterval_Overlaps(t *testing.T) {
	var overlapTests = []struct {
		a   Interval
		b   Interval
		out bool
	}{
		{
			// Case partial overlap at the end
			Interval{Start: 9 * 60, End: 10 * 60},
			Interval{Start: 9*60 + 30, End: 10*60 + 30},
			true,
		},
		{
			// Case one contains the other
			Interval{Start: 9 * 60, End: 12 * 60},
			Interval{Start: 10 * 60, End: 11 * 60},
			true,
		},
		{
			// Case identical intervals
			Interval{Start: 9 * 60, End: 10 * 60},
			Interval{Start: 9 * 60, End: 10 * 60},
			true,
		},
		{
			// Case back to back does not overlap
			Interval{Start: 9 * 60, End: 10 * 60},
			Interval{Start: 10 * 60, End: 11 * 60},
			false,
		},
		{
			// Case disjoint
			Interval{Start: 8 * 60, End: 9 * 60},
			Interval{Start: 14 * 60, End: 15 * 60},
			false,
		},
	}

	for _, tt := range overlapTests {
		if got := tt.a.Overlaps(tt.b); got != tt.out {
			t.Errorf("Overlaps(%s, %s): got %v, want %v", tt.a, tt.b, got, tt.out)
		}

		// Overlap is symmetric
		if got := tt.b.Overlaps(tt.a); got != tt.out {
			t.Errorf("Overlaps(%s, %s): got %v, want %v", tt.b, tt.a, got, tt.out)
		}
	}
}

func TestNewInterval(t *testing.T) {
	interval := mustInterval(t, "09:15", "10:00")

	if interval.Duration() != 45 {
		t.Errorf("Duration: got %d, want 45", interval.Duration())
	}

	if !interval.IsStartBeforeEnd() {
		t.Errorf("IsStartBeforeEnd: got false, want true")
	}

	_, err := NewInterval("9am", "10:00")
	if err == nil {
		t.Errorf("NewInterval with malformed start should fail")
	}
}
