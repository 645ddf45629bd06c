package booking

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestBookingService_ExportCalendar(t *testing.T) {
	fixture := newTestFixture(t)
	haircut := fixture.addService(t, "Haircut", 30)

	freezeTime(t, time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local))

	appointment, err := fixture.service.Book(context.Background(), &BookingRequest{
		FullName:   "Dana Levi",
		Phone:      "0521234567",
		ServiceIDs: []string{haircut.ID.Hex()},
		Date:       "2026-01-04",
		StartTime:  "09:00",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	event, err := fixture.service.CreateManualEvent(context.Background(), &ManualEventRequest{
		Date:      "2026-01-05",
		StartTime: "12:00",
		EndTime:   "13:00",
		Notes:     "lunch",
	})
	if err != nil {
		t.Fatalf("CreateManualEvent: %v", err)
	}

	pending := &Appointment{
		Date:      "2026-01-06",
		StartTime: "10:00",
		EndTime:   "10:30",
		Status:    StatusPending,
		Kind:      KindManual,
		Source:    SourceAdmin,
	}
	err = fixture.appointments.Add(context.Background(), pending)
	if err != nil {
		t.Fatalf("adding appointment: %v", err)
	}

	calendar, err := fixture.service.ExportCalendar(context.Background(), "2026-01-01", "2026-01-31", "noashair.com")
	if err != nil {
		t.Fatalf("ExportCalendar: %v", err)
	}

	ics := string(calendar)

	if !strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n") {
		t.Errorf("export must start with BEGIN:VCALENDAR")
	}
	if !strings.HasSuffix(ics, "END:VCALENDAR\r\n") {
		t.Errorf("export must end with END:VCALENDAR")
	}

	if strings.Count(ics, "BEGIN:VEVENT") != 3 {
		t.Errorf("events: got %d, want 3", strings.Count(ics, "BEGIN:VEVENT"))
	}

	if !strings.Contains(ics, "UID:"+appointment.ID.Hex()+"@noashair.com") {
		t.Errorf("export misses the appointment UID")
	}
	if !strings.Contains(ics, "UID:"+event.ID.Hex()+"@noashair.com") {
		t.Errorf("export misses the manual event UID")
	}

	if !strings.Contains(ics, "DTSTART;TZID=Asia/Jerusalem:20260104T090000") {
		t.Errorf("export misses the appointment start timestamp")
	}
	if !strings.Contains(ics, "DTEND;TZID=Asia/Jerusalem:20260104T093000") {
		t.Errorf("export misses the appointment end timestamp")
	}

	if !strings.Contains(ics, "SUMMARY:Dana Levi - Haircut") {
		t.Errorf("appointment summary missing, got:\n%s", ics)
	}
	if !strings.Contains(ics, "SUMMARY:lunch") {
		t.Errorf("manual event summary should use its notes")
	}

	if strings.Count(ics, "STATUS:CONFIRMED") != 2 {
		t.Errorf("confirmed statuses: got %d, want 2", strings.Count(ics, "STATUS:CONFIRMED"))
	}
	if strings.Count(ics, "STATUS:TENTATIVE") != 1 {
		t.Errorf("tentative statuses: got %d, want 1", strings.Count(ics, "STATUS:TENTATIVE"))
	}
}

func TestEscapeText(t *testing.T) {
	got := escapeText("cut, color; wash\nback")
	want := "cut\\, color\\; wash\\nback"
	if got != want {
		t.Errorf("escapeText: got %q, want %q", got, want)
	}
}

func TestBookingService_ExportExcludesCancelled(t *testing.T) {
	fixture := newTestFixture(t)
	haircut := fixture.addService(t, "Haircut", 30)

	freezeTime(t, time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local))

	appointment, err := fixture.service.Book(context.Background(), &BookingRequest{
		FullName:   "Dana Levi",
		Phone:      "0521234567",
		ServiceIDs: []string{haircut.ID.Hex()},
		Date:       "2026-01-04",
		StartTime:  "09:00",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	_, err = fixture.service.CancelByToken(context.Background(), appointment.CancelToken)
	if err != nil {
		t.Fatalf("CancelByToken: %v", err)
	}

	calendar, err := fixture.service.ExportCalendar(context.Background(), "2026-01-01", "2026-01-31", "noashair.com")
	if err != nil {
		t.Fatalf("ExportCalendar: %v", err)
	}

	if strings.Contains(string(calendar), "BEGIN:VEVENT") {
		t.Errorf("cancelled appointments must not be exported")
	}
}
