package booking

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noashair/salon-backend/pkg/communication"
	"github.com/noashair/salon-backend/pkg/environment"
	"github.com/noashair/salon-backend/pkg/logger"
)

// Handler handles all booking and calendar related API calls
type Handler struct {
	BookingService  *BookingService
	Logger          logger.Interface
	ResponseManager *communication.ResponseManager
}

// respondWithServiceError maps the service layer errors to HTTP statuses
func (handler *Handler) respondWithServiceError(writer http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSlotTaken):
		handler.ResponseManager.RespondWithError(writer, http.StatusConflict,
			"The requested slot is not available", err)
	case errors.Is(err, ErrAlreadyCancelled):
		handler.ResponseManager.RespondWithError(writer, http.StatusConflict,
			"The appointment is already cancelled", err)
	case errors.Is(err, ErrClosedDay), errors.Is(err, ErrUnknownService),
		errors.Is(err, ErrPastMidnight), errors.Is(err, ErrNotManualEvent):
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, mongo.ErrNoDocuments):
		handler.ResponseManager.RespondWithError(writer, http.StatusNotFound,
			"Couldn't find appointment", err)
	default:
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Something went wrong", err)
	}
}

// ServiceList is the route for listing the bookable services
func (handler *Handler) ServiceList(writer http.ResponseWriter, request *http.Request) {
	services, err := handler.BookingService.ActiveServices(request.Context())
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Could not load services", err)
		return
	}

	handler.ResponseManager.Respond(writer, services)
}

// Availability is the route for computing the free slots of a date
func (handler *Handler) Availability(writer http.ResponseWriter, request *http.Request) {
	date := request.URL.Query().Get("date")
	if _, err := time.Parse(DateLayout, date); err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
			"Invalid date parameter", err)
		return
	}

	servicesParam := request.URL.Query().Get("services")
	if servicesParam == "" {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
			"Missing services parameter", nil)
		return
	}

	slots, err := handler.BookingService.AvailableSlots(request.Context(), date, strings.Split(servicesParam, ","))
	if err != nil {
		handler.respondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, map[string]interface{}{
		"date":  date,
		"slots": slots,
	})
}

// AppointmentAdd is the route for booking an appointment
func (handler *Handler) AppointmentAdd(writer http.ResponseWriter, request *http.Request) {
	bookingRequest := BookingRequest{}

	err := json.NewDecoder(request.Body).Decode(&bookingRequest)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	v := NewValidator()
	err = v.Struct(bookingRequest)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	appointment, err := handler.BookingService.Book(request.Context(), &bookingRequest)
	if err != nil {
		handler.respondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithStatus(writer, appointment, http.StatusCreated)
}

// AppointmentCancel is the route for cancelling an appointment through its
// cancel token
func (handler *Handler) AppointmentCancel(writer http.ResponseWriter, request *http.Request) {
	token := request.URL.Query().Get("token")
	if token == "" {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
			"Missing token parameter", nil)
		return
	}

	appointment, err := handler.BookingService.CancelByToken(request.Context(), token)
	if err != nil {
		handler.respondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, appointment)
}

// WeekSchedule is the route for the admin week calendar
func (handler *Handler) WeekSchedule(writer http.ResponseWriter, request *http.Request) {
	week := request.URL.Query().Get("week")
	if _, err := time.Parse(DateLayout, week); err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
			"Invalid week parameter", err)
		return
	}

	schedule, err := handler.BookingService.WeekSchedule(request.Context(), week)
	if err != nil {
		handler.respondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, schedule)
}

// ManualEventAdd is the route for blocking off an interval on the calendar
func (handler *Handler) ManualEventAdd(writer http.ResponseWriter, request *http.Request) {
	eventRequest := ManualEventRequest{}

	err := json.NewDecoder(request.Body).Decode(&eventRequest)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	v := NewValidator()
	err = v.Struct(eventRequest)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	appointment, err := handler.BookingService.CreateManualEvent(request.Context(), &eventRequest)
	if err != nil {
		handler.respondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithStatus(writer, appointment, http.StatusCreated)
}

// ManualEventUpdate is the route for moving or relabelling a manual event
func (handler *Handler) ManualEventUpdate(writer http.ResponseWriter, request *http.Request) {
	eventID := mux.Vars(request)["eventID"]

	eventRequest := ManualEventRequest{}

	err := json.NewDecoder(request.Body).Decode(&eventRequest)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	v := NewValidator()
	err = v.Struct(eventRequest)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	appointment, err := handler.BookingService.UpdateManualEvent(request.Context(), eventID, &eventRequest)
	if err != nil {
		handler.respondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, appointment)
}

// ManualEventDelete is the route for removing a manual event
func (handler *Handler) ManualEventDelete(writer http.ResponseWriter, request *http.Request) {
	eventID := mux.Vars(request)["eventID"]

	err := handler.BookingService.DeleteManualEvent(request.Context(), eventID)
	if err != nil {
		handler.respondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithNoContent(writer)
}

// AdminAppointmentCancel is the route for cancelling a client appointment
// from the admin calendar
func (handler *Handler) AdminAppointmentCancel(writer http.ResponseWriter, request *http.Request) {
	appointmentID := mux.Vars(request)["appointmentID"]

	appointment, err := handler.BookingService.Cancel(request.Context(), appointmentID)
	if err != nil {
		handler.respondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, appointment)
}

// exportRangeDays is how far ahead the default export window reaches
const exportRangeDays = 90

// CalendarExport is the route for downloading the calendar as an iCalendar file
func (handler *Handler) CalendarExport(writer http.ResponseWriter, request *http.Request) {
	from := request.URL.Query().Get("from")
	to := request.URL.Query().Get("to")

	if from == "" {
		from = now().Format(DateLayout)
	}
	if to == "" {
		to = now().AddDate(0, 0, exportRangeDays).Format(DateLayout)
	}

	if _, err := time.Parse(DateLayout, from); err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
			"Invalid from parameter", err)
		return
	}
	if _, err := time.Parse(DateLayout, to); err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
			"Invalid to parameter", err)
		return
	}

	calendar, err := handler.BookingService.ExportCalendar(request.Context(), from, to, environment.Global.CalendarDomain)
	if err != nil {
		handler.respondWithServiceError(writer, err)
		return
	}

	writer.Header().Set("Content-Disposition", "attachment; filename=calendar.ics")
	handler.ResponseManager.RespondWithBinary(writer, calendar, "text/calendar; charset=utf-8")
}
