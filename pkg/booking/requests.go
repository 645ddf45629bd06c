package booking

import (
	"github.com/go-playground/validator/v10"
)

// BookingRequest is the payload a client submits to book an appointment
type BookingRequest struct {
	FullName   string   `json:"fullName" validate:"required"`
	Phone      string   `json:"phone" validate:"required,ilmobile"`
	Email      string   `json:"email" validate:"omitempty,email"`
	ServiceIDs []string `json:"serviceIds" validate:"required,min=1"`
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string   `json:"startTime" validate:"required,datetime=15:04"`
	Notes      string   `json:"notes"`
}

// ManualEventRequest is the payload for creating or updating a manual calendar event
type ManualEventRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
	Notes     string `json:"notes"`
}

// NewValidator creates a validator that knows the ilmobile rule for
// Israeli mobile numbers
func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("ilmobile", func(fl validator.FieldLevel) bool {
		_, err := CanonicalPhone(fl.Field().String())
		return err == nil
	})

	return v
}
