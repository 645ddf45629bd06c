package notifications

import "context"

// BookingNotification is the structured payload delivered to the external
// automation channel after a successful booking
type BookingNotification struct {
	LeadID             string `json:"LeadID"`
	Name               string `json:"Name"`
	Email              string `json:"Email"`
	PhoneNumber        string `json:"phoneNumber"`
	AppointmentDate    string `json:"appointmentDate"`
	AppointmentTime    string `json:"appointmentTime"`
	AppointmentEndTime string `json:"appointmentEndTime"`
	Services           string `json:"services"`
	Duration           int    `json:"duration"`
	Notes              string `json:"notes"`
}

// NotifierInterface is the interface notification channels have to implement.
// Delivery is best-effort; a failure must never roll back a booking.
type NotifierInterface interface {
	BookingCreated(ctx context.Context, notification *BookingNotification) error
}
