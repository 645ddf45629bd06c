package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/noashair/salon-backend/pkg/email"
	"github.com/noashair/salon-backend/pkg/locking"
	"github.com/noashair/salon-backend/pkg/logger"
	"github.com/noashair/salon-backend/pkg/notifications"
	"github.com/noashair/salon-backend/pkg/scheduling"
)

// now is overridable for testing purposes
var now = time.Now

// bookingLockTTL is how long a per-date booking lock is held at most
const bookingLockTTL = 10 * time.Second

var (
	// ErrClosedDay is returned when the requested date has no working hours
	ErrClosedDay = errors.New("the salon is closed on this day")
	// ErrSlotTaken is returned when the requested slot is no longer available
	ErrSlotTaken = errors.New("the requested slot is not available")
	// ErrPastMidnight is returned when a booking would run past the end of
	// its calendar day
	ErrPastMidnight = errors.New("the appointment would run past midnight")
	// ErrNotManualEvent is returned when a manual event operation targets a
	// client appointment
	ErrNotManualEvent = errors.New("appointment is not a manual event")
	// ErrAlreadyCancelled is returned when a cancellation targets an
	// appointment that is already cancelled
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
)

// BookingService implements the booking and calendar operations on top of the
// repositories and the scheduling engine
type BookingService struct {
	ServiceRepository     ServiceRepositoryInterface
	ClientRepository      ClientRepositoryInterface
	AppointmentRepository AppointmentRepositoryInterface
	CatalogCache          CatalogCacheInterface
	Notifier              notifications.NotifierInterface
	Mailer                email.Mailer
	Locker                locking.LockerInterface
	Logger                logger.Interface
}

// NewBookingService constructs a BookingService
func NewBookingService(
	serviceRepository ServiceRepositoryInterface,
	clientRepository ClientRepositoryInterface,
	appointmentRepository AppointmentRepositoryInterface,
	catalogCache CatalogCacheInterface,
	notifier notifications.NotifierInterface,
	mailer email.Mailer,
	locker locking.LockerInterface,
	log logger.Interface) *BookingService {
	return &BookingService{
		ServiceRepository:     serviceRepository,
		ClientRepository:      clientRepository,
		AppointmentRepository: appointmentRepository,
		CatalogCache:          catalogCache,
		Notifier:              notifier,
		Mailer:                mailer,
		Locker:                locker,
		Logger:                log,
	}
}

// ActiveServices returns the bookable service catalog, served from the cache
// when possible
func (s *BookingService) ActiveServices(ctx context.Context) ([]*Service, error) {
	services, err := s.CatalogCache.Get(ctx, CatalogCacheKey)
	if err == nil {
		return services, nil
	}

	services, err = s.ServiceRepository.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load service catalog")
	}

	err = s.CatalogCache.Add(ctx, CatalogCacheKey, services)
	if err != nil {
		s.Logger.Warning("Could not cache service catalog", err)
	}

	return services, nil
}

// InvalidateCatalog drops the cached service catalog after a catalog mutation
func (s *BookingService) InvalidateCatalog(ctx context.Context) {
	err := s.CatalogCache.Invalidate(ctx, CatalogCacheKey)
	if err != nil {
		s.Logger.Warning("Could not invalidate service catalog cache", err)
	}
}

// busyIntervals collects the intervals of the blocking appointments of a date
func (s *BookingService) busyIntervals(ctx context.Context, date string) ([]scheduling.Interval, error) {
	appointments, err := s.AppointmentRepository.FindBlockingByDate(ctx, date)
	if err != nil {
		return nil, errors.Wrap(err, "could not load appointments")
	}

	busy := make([]scheduling.Interval, 0, len(appointments))
	for _, appointment := range appointments {
		interval, err := appointment.Interval()
		if err != nil {
			s.Logger.Error("Appointment has malformed times", errors.Wrap(err, appointment.ID.Hex()))
			continue
		}
		busy = append(busy, interval)
	}

	return busy, nil
}

// resolveServices turns service id strings into catalog entries and the
// aggregated booking duration. Unknown ids reject the request.
func (s *BookingService) resolveServices(ctx context.Context, ids []string) ([]*Service, int, error) {
	serviceIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, 0, errors.Wrap(ErrUnknownService, id)
		}
		serviceIDs = append(serviceIDs, objectID)
	}

	services, err := s.ServiceRepository.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not load services")
	}

	duration, err := AggregateDuration(serviceIDs, NewServiceLookup(services), RejectMissing)
	if err != nil {
		return nil, 0, err
	}

	return services, duration, nil
}

// AvailableSlots computes the bookable start times for a combination of
// services on one date
func (s *BookingService) AvailableSlots(ctx context.Context, date string, serviceIDs []string) ([]scheduling.TimeOfDay, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, errors.Wrap(err, "invalid date")
	}

	_, duration, err := s.resolveServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	busy, err := s.busyIntervals(ctx, date)
	if err != nil {
		return nil, err
	}

	return scheduling.AvailableSlots(day, duration, busy, now()), nil
}

// upsertClient finds a client by canonical phone or creates one. A returning
// client keeps their identity and history; name and email are refreshed from
// the latest booking.
func (s *BookingService) upsertClient(ctx context.Context, request *BookingRequest, phone string) (*Client, error) {
	client, err := s.ClientRepository.FindByPhone(ctx, phone)
	if err == nil {
		client.FullName = request.FullName
		if request.Email != "" {
			client.Email = request.Email
		}

		err = s.ClientRepository.Update(ctx, client)
		if err != nil {
			return nil, errors.Wrap(err, "could not update client")
		}

		return client, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "could not look up client")
	}

	client = &Client{
		FullName: request.FullName,
		Phone:    phone,
		Email:    request.Email,
	}

	err = s.ClientRepository.Add(ctx, client)
	if err != nil {
		return nil, errors.Wrap(err, "could not create client")
	}

	return client, nil
}

// Book creates a client appointment. The requested slot is re-validated under
// a per-date lock so two clients racing for the same slot cannot both win.
func (s *BookingService) Book(ctx context.Context, request *BookingRequest) (*Appointment, error) {
	day, err := time.Parse(DateLayout, request.Date)
	if err != nil {
		return nil, errors.Wrap(err, "invalid date")
	}

	if scheduling.WorkingHoursFor(day.Weekday()) == nil {
		return nil, ErrClosedDay
	}

	phone, err := CanonicalPhone(request.Phone)
	if err != nil {
		return nil, err
	}

	services, duration, err := s.resolveServices(ctx, request.ServiceIDs)
	if err != nil {
		return nil, err
	}

	start, err := scheduling.ParseTimeOfDay(request.StartTime)
	if err != nil {
		return nil, err
	}

	// Appointments live within one calendar day; an end time of 24:00 or
	// later has no HH:MM representation
	end := start.Add(duration)
	if end >= 24*60 {
		return nil, ErrPastMidnight
	}

	lock, err := s.Locker.Acquire(ctx, "booking:"+request.Date, bookingLockTTL)
	if err != nil {
		return nil, errors.Wrap(err, "could not lock booking date")
	}
	defer func(lock locking.LockInterface) {
		err := lock.Release(ctx)
		if err != nil {
			s.Logger.Warning("Could not release booking lock", err)
		}
	}(lock)

	busy, err := s.busyIntervals(ctx, request.Date)
	if err != nil {
		return nil, err
	}

	stillFree := false
	for _, slot := range scheduling.AvailableSlots(day, duration, busy, now()) {
		if slot == start {
			stillFree = true
			break
		}
	}

	if !stillFree {
		return nil, ErrSlotTaken
	}

	client, err := s.upsertClient(ctx, request, phone)
	if err != nil {
		return nil, err
	}

	serviceObjectIDs := make([]primitive.ObjectID, 0, len(services))
	serviceNames := make([]string, 0, len(services))
	for _, service := range services {
		serviceObjectIDs = append(serviceObjectIDs, service.ID)
		serviceNames = append(serviceNames, service.Name)
	}

	appointment := &Appointment{
		Date:        request.Date,
		StartTime:   start.String(),
		EndTime:     end.String(),
		ClientID:    &client.ID,
		ServiceIDs:  serviceObjectIDs,
		Status:      StatusConfirmed,
		Source:      SourceClient,
		Kind:        KindService,
		Notes:       request.Notes,
		CancelToken: uuid.NewString(),
	}

	err = s.AppointmentRepository.Add(ctx, appointment)
	if err != nil {
		return nil, errors.Wrap(err, "could not persist appointment")
	}

	s.dispatchBookingCreated(ctx, appointment, client, serviceNames, duration)

	return appointment, nil
}

// dispatchBookingCreated notifies the automation channel and mails the client.
// Both are best-effort; the booking stands regardless.
func (s *BookingService) dispatchBookingCreated(ctx context.Context, appointment *Appointment, client *Client, serviceNames []string, duration int) {
	err := s.Notifier.BookingCreated(ctx, &notifications.BookingNotification{
		LeadID:             appointment.ID.Hex(),
		Name:               client.FullName,
		Email:              client.Email,
		PhoneNumber:        client.Phone,
		AppointmentDate:    appointment.Date,
		AppointmentTime:    appointment.StartTime,
		AppointmentEndTime: appointment.EndTime,
		Services:           strings.Join(serviceNames, ", "),
		Duration:           duration,
		Notes:              appointment.Notes,
	})
	if err != nil {
		s.Logger.Warning("Could not deliver booking notification", err)
	}

	if client.Email == "" {
		return
	}

	err = s.Mailer.SendEmail(ctx, &email.Email{
		ReceiverName:    client.FullName,
		ReceiverAddress: client.Email,
		Template:        email.BookingConfirmationTemplate,
		Parameters: map[string]interface{}{
			"name":     client.FullName,
			"date":     appointment.Date,
			"time":     appointment.StartTime,
			"services": strings.Join(serviceNames, ", "),
		},
	})
	if err != nil {
		s.Logger.Warning("Could not send booking confirmation email", err)
	}
}

// CancelByToken cancels a client appointment through its cancel token
func (s *BookingService) CancelByToken(ctx context.Context, token string) (*Appointment, error) {
	appointment, err := s.AppointmentRepository.FindByCancelToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.cancel(ctx, appointment)
}

// Cancel cancels a client appointment from the admin calendar. Manual events
// are deleted instead of cancelled.
func (s *BookingService) Cancel(ctx context.Context, id string) (*Appointment, error) {
	appointment, err := s.AppointmentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if appointment.IsManual() {
		return nil, ErrNotManualEvent
	}

	return s.cancel(ctx, appointment)
}

func (s *BookingService) cancel(ctx context.Context, appointment *Appointment) (*Appointment, error) {
	if appointment.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	appointment.Status = StatusCancelled

	err := s.AppointmentRepository.Update(ctx, appointment)
	if err != nil {
		return nil, errors.Wrap(err, "could not cancel appointment")
	}

	return appointment, nil
}

// manualInterval validates the times of a manual event request
func manualInterval(request *ManualEventRequest) (scheduling.Interval, error) {
	interval, err := scheduling.NewInterval(request.StartTime, request.EndTime)
	if err != nil {
		return scheduling.Interval{}, err
	}

	if !interval.IsStartBeforeEnd() {
		return scheduling.Interval{}, errors.New("event must start before it ends")
	}

	return interval, nil
}

// hasConflict checks a candidate interval against the blocking appointments
// of a date, skipping the appointment with the given id
func (s *BookingService) hasConflict(ctx context.Context, date string, candidate scheduling.Interval, skipID primitive.ObjectID) (bool, error) {
	appointments, err := s.AppointmentRepository.FindBlockingByDate(ctx, date)
	if err != nil {
		return false, errors.Wrap(err, "could not load appointments")
	}

	for _, appointment := range appointments {
		if appointment.ID == skipID {
			continue
		}

		interval, err := appointment.Interval()
		if err != nil {
			s.Logger.Error("Appointment has malformed times", errors.Wrap(err, appointment.ID.Hex()))
			continue
		}

		if candidate.Overlaps(interval) {
			return true, nil
		}
	}

	return false, nil
}

// CreateManualEvent blocks off an interval on the admin calendar
func (s *BookingService) CreateManualEvent(ctx context.Context, request *ManualEventRequest) (*Appointment, error) {
	interval, err := manualInterval(request)
	if err != nil {
		return nil, err
	}

	lock, err := s.Locker.Acquire(ctx, "booking:"+request.Date, bookingLockTTL)
	if err != nil {
		return nil, errors.Wrap(err, "could not lock booking date")
	}
	defer func(lock locking.LockInterface) {
		err := lock.Release(ctx)
		if err != nil {
			s.Logger.Warning("Could not release booking lock", err)
		}
	}(lock)

	conflict, err := s.hasConflict(ctx, request.Date, interval, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	appointment := &Appointment{
		Date:       request.Date,
		StartTime:  interval.Start.String(),
		EndTime:    interval.End.String(),
		ServiceIDs: []primitive.ObjectID{},
		Status:     StatusConfirmed,
		Source:     SourceAdmin,
		Kind:       KindManual,
		Notes:      request.Notes,
	}

	err = s.AppointmentRepository.Add(ctx, appointment)
	if err != nil {
		return nil, errors.Wrap(err, "could not persist manual event")
	}

	return appointment, nil
}

// UpdateManualEvent moves or relabels a manual event
func (s *BookingService) UpdateManualEvent(ctx context.Context, id string, request *ManualEventRequest) (*Appointment, error) {
	appointment, err := s.AppointmentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.IsManual() {
		return nil, ErrNotManualEvent
	}

	interval, err := manualInterval(request)
	if err != nil {
		return nil, err
	}

	lock, err := s.Locker.Acquire(ctx, "booking:"+request.Date, bookingLockTTL)
	if err != nil {
		return nil, errors.Wrap(err, "could not lock booking date")
	}
	defer func(lock locking.LockInterface) {
		err := lock.Release(ctx)
		if err != nil {
			s.Logger.Warning("Could not release booking lock", err)
		}
	}(lock)

	conflict, err := s.hasConflict(ctx, request.Date, interval, appointment.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	appointment.Date = request.Date
	appointment.StartTime = interval.Start.String()
	appointment.EndTime = interval.End.String()
	appointment.Notes = request.Notes

	err = s.AppointmentRepository.Update(ctx, appointment)
	if err != nil {
		return nil, errors.Wrap(err, "could not update manual event")
	}

	return appointment, nil
}

// DeleteManualEvent removes a manual event from the calendar
func (s *BookingService) DeleteManualEvent(ctx context.Context, id string) error {
	appointment, err := s.AppointmentRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !appointment.IsManual() {
		return ErrNotManualEvent
	}

	return s.AppointmentRepository.Remove(ctx, id)
}

// ScheduleEvent is one appointment on the admin week calendar together with
// its display data
type ScheduleEvent struct {
	Appointment *Appointment             `json:"appointment"`
	Client      *Client                  `json:"client,omitempty"`
	Services    []*Service               `json:"services,omitempty"`
	Geometry    scheduling.EventGeometry `json:"geometry"`
}

// DaySchedule is one day column of the admin week calendar
type DaySchedule struct {
	Date   string           `json:"date"`
	Closed bool             `json:"closed"`
	Events []*ScheduleEvent `json:"events"`
}

// scheduleBaseHour is the first hour rendered in a day column
const scheduleBaseHour = 8

// scheduleHourHeight is the rendered height of one hour in a day column
const scheduleHourHeight = 80.0

// WeekSchedule assembles the seven day columns starting at weekStart, with
// every appointment enriched by its client, its services and its geometry
func (s *BookingService) WeekSchedule(ctx context.Context, weekStart string) ([]*DaySchedule, error) {
	start, err := time.Parse(DateLayout, weekStart)
	if err != nil {
		return nil, errors.Wrap(err, "invalid week start")
	}

	end := start.AddDate(0, 0, 6)

	appointments, err := s.AppointmentRepository.FindBlockingInRange(ctx, weekStart, end.Format(DateLayout))
	if err != nil {
		return nil, errors.Wrap(err, "could not load week appointments")
	}

	byDate := make(map[string][]*Appointment)
	for _, appointment := range appointments {
		byDate[appointment.Date] = append(byDate[appointment.Date], appointment)
	}

	week := make([]*DaySchedule, 7)

	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < 7; i++ {
		i := i
		day := start.AddDate(0, 0, i)
		date := day.Format(DateLayout)

		group.Go(func() error {
			schedule, err := s.daySchedule(groupCtx, day, byDate[date])
			if err != nil {
				return err
			}

			week[i] = schedule
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return nil, err
	}

	return week, nil
}

func (s *BookingService) daySchedule(ctx context.Context, day time.Time, appointments []*Appointment) (*DaySchedule, error) {
	schedule := &DaySchedule{
		Date:   day.Format(DateLayout),
		Closed: scheduling.WorkingHoursFor(day.Weekday()) == nil,
		Events: []*ScheduleEvent{},
	}

	for _, appointment := range appointments {
		interval, err := appointment.Interval()
		if err != nil {
			s.Logger.Error("Appointment has malformed times", errors.Wrap(err, appointment.ID.Hex()))
			continue
		}

		event := &ScheduleEvent{
			Appointment: appointment,
			Geometry:    scheduling.Project(interval, scheduleBaseHour, scheduleHourHeight),
		}

		if appointment.ClientID != nil {
			client, err := s.ClientRepository.FindByID(ctx, appointment.ClientID.Hex())
			if err != nil {
				s.Logger.Warning("Could not load client for appointment", err)
			} else {
				event.Client = client
			}
		}

		if len(appointment.ServiceIDs) > 0 {
			services, err := s.ServiceRepository.FindByIDs(ctx, appointment.ServiceIDs)
			if err != nil {
				s.Logger.Warning("Could not load services for appointment", err)
			} else {
				event.Services = services
			}
		}

		schedule.Events = append(schedule.Events, event)
	}

	return schedule, nil
}
