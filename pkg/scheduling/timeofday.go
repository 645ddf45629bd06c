package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time expressed in minutes since midnight
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("time of day %q is not in HH:MM format", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("time of day %q has an invalid hour", value)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("time of day %q has an invalid minute", value)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day %q is out of range", value)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// TimeOfDayFromClock extracts the wall-clock portion of a time.Time
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	hour, minute, _ := t.Clock()
	return TimeOfDay(hour*60 + minute)
}

// Hour returns the hour portion
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute portion
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Add returns the TimeOfDay the given number of minutes later
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// String renders a TimeOfDay as "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON renders a TimeOfDay as a quoted "HH:MM" string
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON parses a quoted "HH:MM" string
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	value, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	parsed, err := ParseTimeOfDay(value)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
