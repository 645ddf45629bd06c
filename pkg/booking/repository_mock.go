package booking

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockServiceRepository is an in memory ServiceRepositoryInterface for tests
type MockServiceRepository struct {
	Services []*Service
}

// Add adds a service
func (r *MockServiceRepository) Add(_ context.Context, service *Service) error {
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	r.Services = append(r.Services, service)
	return nil
}

// FindByID finds a service by ID
func (r *MockServiceRepository) FindByID(_ context.Context, id string) (*Service, error) {
	for _, service := range r.Services {
		if service.ID.Hex() == id {
			return service, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

// FindByIDs finds all services whose id is in the given set
func (r *MockServiceRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*Service, error) {
	var services []*Service

	for _, service := range r.Services {
		for _, id := range ids {
			if service.ID == id {
				services = append(services, service)
				break
			}
		}
	}

	return services, nil
}

// FindActive finds all active services
func (r *MockServiceRepository) FindActive(_ context.Context) ([]*Service, error) {
	var services []*Service

	for _, service := range r.Services {
		if service.IsActive {
			services = append(services, service)
		}
	}

	return services, nil
}

// Update updates a service
func (r *MockServiceRepository) Update(_ context.Context, service *Service) error {
	for i, existing := range r.Services {
		if existing.ID == service.ID {
			r.Services[i] = service
			return nil
		}
	}

	return mongo.ErrNoDocuments
}

// MockClientRepository is an in memory ClientRepositoryInterface for tests
type MockClientRepository struct {
	Clients []*Client
}

// Add adds a client
func (r *MockClientRepository) Add(_ context.Context, client *Client) error {
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	r.Clients = append(r.Clients, client)
	return nil
}

// FindByID finds a client by ID
func (r *MockClientRepository) FindByID(_ context.Context, id string) (*Client, error) {
	for _, client := range r.Clients {
		if client.ID.Hex() == id {
			return client, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

// FindByPhone finds a client by phone
func (r *MockClientRepository) FindByPhone(_ context.Context, phone string) (*Client, error) {
	for _, client := range r.Clients {
		if client.Phone == phone {
			return client, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

// Update updates a client
func (r *MockClientRepository) Update(_ context.Context, client *Client) error {
	for i, existing := range r.Clients {
		if existing.ID == client.ID {
			r.Clients[i] = client
			return nil
		}
	}

	return mongo.ErrNoDocuments
}

// MockAppointmentRepository is an in memory AppointmentRepositoryInterface for tests
type MockAppointmentRepository struct {
	Appointments []*Appointment
}

// Add adds an appointment
func (r *MockAppointmentRepository) Add(_ context.Context, appointment *Appointment) error {
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	r.Appointments = append(r.Appointments, appointment)
	return nil
}

// FindByID finds an appointment by ID
func (r *MockAppointmentRepository) FindByID(_ context.Context, id string) (*Appointment, error) {
	for _, appointment := range r.Appointments {
		if appointment.ID.Hex() == id {
			return appointment, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

// FindByCancelToken finds an appointment by cancel token
func (r *MockAppointmentRepository) FindByCancelToken(_ context.Context, token string) (*Appointment, error) {
	for _, appointment := range r.Appointments {
		if appointment.CancelToken != "" && appointment.CancelToken == token {
			return appointment, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

// FindBlockingByDate finds the pending and confirmed appointments of one day
func (r *MockAppointmentRepository) FindBlockingByDate(_ context.Context, date string) ([]*Appointment, error) {
	var appointments []*Appointment

	for _, appointment := range r.Appointments {
		if appointment.Date == date && appointment.IsBlocking() {
			appointments = append(appointments, appointment)
		}
	}

	return appointments, nil
}

// FindBlockingInRange finds the pending and confirmed appointments in a date range
func (r *MockAppointmentRepository) FindBlockingInRange(_ context.Context, fromDate string, toDate string) ([]*Appointment, error) {
	var appointments []*Appointment

	for _, appointment := range r.Appointments {
		if appointment.Date >= fromDate && appointment.Date <= toDate && appointment.IsBlocking() {
			appointments = append(appointments, appointment)
		}
	}

	return appointments, nil
}

// Update updates an appointment
func (r *MockAppointmentRepository) Update(_ context.Context, appointment *Appointment) error {
	for i, existing := range r.Appointments {
		if existing.ID == appointment.ID {
			r.Appointments[i] = appointment
			return nil
		}
	}

	return mongo.ErrNoDocuments
}

// Remove deletes an appointment
func (r *MockAppointmentRepository) Remove(_ context.Context, id string) error {
	for i, appointment := range r.Appointments {
		if appointment.ID.Hex() == id {
			r.Appointments = append(r.Appointments[:i], r.Appointments[i+1:]...)
			return nil
		}
	}

	return mongo.ErrNoDocuments
}
