package scheduling

// EventInset is the fixed visual gap subtracted from an event's extent so
// back-to-back events don't touch in the calendar grid.
const EventInset = 8.0

// EventGeometry is the vertical position of an event inside a day column
type EventGeometry struct {
	Offset float64 `json:"offset"`
	Extent float64 `json:"extent"`
}

// Project maps an interval to its vertical position in a day column that
// starts at baseHour and renders every hour hourHeight units tall. It is a
// pure geometric projection: it performs no conflict detection and does not
// clip intervals that fall outside the displayed range, but it never produces
// a negative extent for well-formed input.
func Project(interval Interval, baseHour int, hourHeight float64) EventGeometry {
	offset := float64(int(interval.Start)-baseHour*60) / 60 * hourHeight

	extent := float64(interval.Duration())/60*hourHeight - EventInset
	if extent < 0 {
		extent = 0
	}

	return EventGeometry{Offset: offset, Extent: extent}
}
