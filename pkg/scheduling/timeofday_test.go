package scheduling

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	var parseTests = []struct {
		in      string
		out     TimeOfDay
		wantErr bool
	}{
		{"08:00", 8 * 60, false},
		{"13:30", 13*60 + 30, false},
		{"00:00", 0, false},
		{"23:59", 23*60 + 59, false},
		{"24:00", 0, true},
		{"08:60", 0, true},
		{"8am", 0, true},
		{"", 0, true},
	}

	for _, tt := range parseTests {
		got, err := ParseTimeOfDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeOfDay(%q): error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.out {
			t.Errorf("ParseTimeOfDay(%q): got %d, want %d", tt.in, got, tt.out)
		}
	}
}

func TestTimeOfDay_String(t *testing.T) {
	tod := TimeOfDay(9*60 + 5)
	if tod.String() != "09:05" {
		t.Errorf("String: got %s, want 09:05", tod)
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	data, err := json.Marshal(TimeOfDay(13*60 + 30))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"13:30"` {
		t.Errorf("Marshal: got %s, want \"13:30\"", data)
	}

	var tod TimeOfDay
	err = json.Unmarshal([]byte(`"08:30"`), &tod)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if tod != 8*60+30 {
		t.Errorf("Unmarshal: got %d, want %d", tod, 8*60+30)
	}
}

func TestTimeOfDayFromClock(t *testing.T) {
	clock := time.Date(2026, 1, 4, 15, 45, 12, 0, time.Local)
	if got := TimeOfDayFromClock(clock); got != 15*60+45 {
		t.Errorf("TimeOfDayFromClock: got %d, want %d", got, 15*60+45)
	}
}
