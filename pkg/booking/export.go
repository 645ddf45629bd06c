package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// calendarTimezone is the wall-clock timezone all appointments live in
const calendarTimezone = "Asia/Jerusalem"

// calendarName is the display name of the exported calendar
const calendarName = "NOA'S HAIR STUDIO"

// escapeText escapes the characters iCalendar text values reserve
func escapeText(value string) string {
	return strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	).Replace(value)
}

// icsTimestamp renders a date and a wall-clock time as a floating iCalendar
// timestamp
func icsTimestamp(date string, clock string) (string, error) {
	t, err := time.Parse(DateLayout+" 15:04", date+" "+clock)
	if err != nil {
		return "", err
	}

	return t.Format("20060102T150405"), nil
}

// eventStatus maps an appointment status to its iCalendar STATUS value
func eventStatus(status AppointmentStatus) string {
	if status == StatusPending {
		return "TENTATIVE"
	}
	return "CONFIRMED"
}

// eventSummary builds the display title of an exported appointment
func (s *BookingService) eventSummary(ctx context.Context, appointment *Appointment) string {
	if appointment.IsManual() {
		if appointment.Notes != "" {
			return appointment.Notes
		}
		return "Personal event"
	}

	parts := []string{}

	if appointment.ClientID != nil {
		client, err := s.ClientRepository.FindByID(ctx, appointment.ClientID.Hex())
		if err == nil {
			parts = append(parts, client.FullName)
		}
	}

	if len(appointment.ServiceIDs) > 0 {
		services, err := s.ServiceRepository.FindByIDs(ctx, appointment.ServiceIDs)
		if err == nil {
			names := make([]string, 0, len(services))
			for _, service := range services {
				names = append(names, service.Name)
			}
			if len(names) > 0 {
				parts = append(parts, strings.Join(names, ", "))
			}
		}
	}

	if len(parts) == 0 {
		return "Appointment"
	}

	return strings.Join(parts, " - ")
}

// ExportCalendar renders the blocking appointments between fromDate and
// toDate as an iCalendar document
func (s *BookingService) ExportCalendar(ctx context.Context, fromDate string, toDate string, domain string) ([]byte, error) {
	appointments, err := s.AppointmentRepository.FindBlockingInRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, errors.Wrap(err, "could not load appointments for export")
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//NOA'S HAIR STUDIO//Calendar//EN",
		"CALSCALE:GREGORIAN",
		"X-WR-CALNAME:" + escapeText(calendarName),
		"X-WR-TIMEZONE:" + calendarTimezone,
	}

	stamp := now().UTC().Format("20060102T150405Z")

	for _, appointment := range appointments {
		start, err := icsTimestamp(appointment.Date, appointment.StartTime)
		if err != nil {
			s.Logger.Error("Appointment has malformed times", errors.Wrap(err, appointment.ID.Hex()))
			continue
		}

		end, err := icsTimestamp(appointment.Date, appointment.EndTime)
		if err != nil {
			s.Logger.Error("Appointment has malformed times", errors.Wrap(err, appointment.ID.Hex()))
			continue
		}

		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%s@%s", appointment.ID.Hex(), domain),
			"DTSTAMP:"+stamp,
			"DTSTART;TZID="+calendarTimezone+":"+start,
			"DTEND;TZID="+calendarTimezone+":"+end,
			"SUMMARY:"+escapeText(s.eventSummary(ctx, appointment)),
			"STATUS:"+eventStatus(appointment.Status),
		)

		if appointment.Notes != "" && !appointment.IsManual() {
			lines = append(lines, "DESCRIPTION:"+escapeText(appointment.Notes))
		}

		lines = append(lines, "END:VEVENT")
	}

	lines = append(lines, "END:VCALENDAR")

	return []byte(strings.Join(lines, "\r\n") + "\r\n"), nil
}
