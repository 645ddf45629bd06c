package scheduling

import (
	"testing"
)

func TestProject(t *testing.T) {
	var projectionTests = []struct {
		interval Interval
		out      EventGeometry
	}{
		{
			// Case 09:15-10:00 in a column starting at 08:00
			Interval{Start: 9*60 + 15, End: 10 * 60},
			EventGeometry{Offset: 100, Extent: 52},
		},
		{
			// Case full hour at column start
			Interval{Start: 8 * 60, End: 9 * 60},
			EventGeometry{Offset: 0, Extent: 72},
		},
		{
			// Case two hour appointment
			Interval{Start: 10 * 60, End: 12 * 60},
			EventGeometry{Offset: 160, Extent: 152},
		},
		{
			// Case tiny interval never yields a negative extent
			Interval{Start: 9 * 60, End: 9*60 + 5},
			EventGeometry{Offset: 80, Extent: 0},
		},
	}

	for _, tt := range projectionTests {
		got := Project(tt.interval, 8, 80)
		if got != tt.out {
			t.Errorf("Project(%s): got %+v, want %+v", tt.interval, got, tt.out)
		}
	}
}

func TestProjectZeroLength(t *testing.T) {
	got := Project(Interval{Start: 9 * 60, End: 9 * 60}, 8, 80)
	if got.Extent != 0 {
		t.Errorf("zero length extent: got %f, want 0", got.Extent)
	}
}
