package booking

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/noashair/salon-backend/pkg/scheduling"
)

// DateLayout is the calendar day format appointments are stored with
const DateLayout = "2006-01-02"

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

const (
	// StatusPending marks an appointment awaiting confirmation
	StatusPending AppointmentStatus = "pending"
	// StatusConfirmed marks an appointment that blocks its slot
	StatusConfirmed AppointmentStatus = "confirmed"
	// StatusCancelled marks an appointment that no longer blocks its slot
	StatusCancelled AppointmentStatus = "cancelled"
	// StatusCompleted marks an appointment that already took place
	StatusCompleted AppointmentStatus = "completed"
)

// AppointmentSource declares who created an appointment
type AppointmentSource string

const (
	// SourceClient marks appointments created through the booking flow
	SourceClient AppointmentSource = "client"
	// SourceAdmin marks appointments created from the admin calendar
	SourceAdmin AppointmentSource = "admin"
)

// AppointmentKind is the explicit variant tag of an appointment
type AppointmentKind string

const (
	// KindService is a client appointment whose duration derives from its services
	KindService AppointmentKind = "service"
	// KindManual is an admin calendar block with no client and no services
	KindManual AppointmentKind = "manual"
)

// Appointment is a booked time interval on one calendar day. Service
// appointments and manual events share this shape; Kind tells them apart.
type Appointment struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id"`
	Date           string               `json:"date" bson:"date" validate:"required"`
	StartTime      string               `json:"startTime" bson:"startTime" validate:"required"`
	EndTime        string               `json:"endTime" bson:"endTime" validate:"required"`
	ClientID       *primitive.ObjectID  `json:"client,omitempty" bson:"client,omitempty"`
	ServiceIDs     []primitive.ObjectID `json:"services" bson:"services"`
	Status         AppointmentStatus    `json:"status" bson:"status"`
	Source         AppointmentSource    `json:"source" bson:"source"`
	Kind           AppointmentKind      `json:"kind" bson:"kind"`
	Notes          string               `json:"notes,omitempty" bson:"notes,omitempty"`
	CancelToken    string               `json:"-" bson:"cancelToken,omitempty"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
	LastModifiedAt time.Time            `json:"lastModifiedAt" bson:"lastModifiedAt"`
}

// Interval parses the appointment's wall-clock times
func (a *Appointment) Interval() (scheduling.Interval, error) {
	return scheduling.NewInterval(a.StartTime, a.EndTime)
}

// IsManual checks if the appointment is an admin calendar block
func (a *Appointment) IsManual() bool {
	return a.Kind == KindManual
}

// IsBlocking checks if the appointment takes part in conflict evaluation
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}
