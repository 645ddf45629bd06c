package booking

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noashair/salon-backend/pkg/logger"
)

// AppointmentRepositoryInterface is the interface for an AppointmentRepository
type AppointmentRepositoryInterface interface {
	Add(ctx context.Context, appointment *Appointment) error
	FindByID(ctx context.Context, id string) (*Appointment, error)
	FindByCancelToken(ctx context.Context, token string) (*Appointment, error)
	FindBlockingByDate(ctx context.Context, date string) ([]*Appointment, error)
	FindBlockingInRange(ctx context.Context, fromDate string, toDate string) ([]*Appointment, error)
	Update(ctx context.Context, appointment *Appointment) error
	Remove(ctx context.Context, id string) error
}

// AppointmentRepository does everything related to storing appointments
type AppointmentRepository struct {
	DB     *mongo.Collection
	Logger logger.Interface
}

// blockingStatuses are the statuses that take part in conflict evaluation
var blockingStatuses = bson.A{StatusPending, StatusConfirmed}

// Add adds an appointment
func (r AppointmentRepository) Add(ctx context.Context, appointment *Appointment) error {
	appointment.ID = primitive.NewObjectID()
	appointment.CreatedAt = time.Now()
	appointment.LastModifiedAt = time.Now()

	_, err := r.DB.InsertOne(ctx, appointment)
	return err
}

// FindByID finds an appointment by ID
func (r AppointmentRepository) FindByID(ctx context.Context, id string) (*Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var appointment = Appointment{}
	result := r.DB.FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	err = result.Decode(&appointment)
	if err != nil {
		return nil, err
	}

	return &appointment, nil
}

// FindByCancelToken finds an appointment by its client-facing cancel token
func (r AppointmentRepository) FindByCancelToken(ctx context.Context, token string) (*Appointment, error) {
	var appointment = Appointment{}

	result := r.DB.FindOne(ctx, bson.M{"cancelToken": token})
	if result.Err() != nil {
		return nil, result.Err()
	}

	err := result.Decode(&appointment)
	if err != nil {
		return nil, err
	}

	return &appointment, nil
}

// FindBlockingByDate finds the pending and confirmed appointments of one
// calendar day, sorted by start time. Cancelled and completed appointments
// never block a slot and are filtered out here.
func (r AppointmentRepository) FindBlockingByDate(ctx context.Context, date string) ([]*Appointment, error) {
	var appointments []*Appointment

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"startTime": 1})

	cursor, err := r.DB.Find(ctx, bson.M{
		"date":   date,
		"status": bson.M{"$in": blockingStatuses},
	}, findOptions)
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

// FindBlockingInRange finds the pending and confirmed appointments with
// fromDate <= date <= toDate, sorted by date and start time
func (r AppointmentRepository) FindBlockingInRange(ctx context.Context, fromDate string, toDate string) ([]*Appointment, error) {
	var appointments []*Appointment

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})

	cursor, err := r.DB.Find(ctx, bson.M{
		"date":   bson.M{"$gte": fromDate, "$lte": toDate},
		"status": bson.M{"$in": blockingStatuses},
	}, findOptions)
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

// Update updates an appointment
func (r AppointmentRepository) Update(ctx context.Context, appointment *Appointment) error {
	appointment.LastModifiedAt = time.Now()

	result, err := r.DB.UpdateOne(ctx, bson.M{"_id": appointment.ID}, bson.M{"$set": appointment})
	if err != nil {
		return err
	}

	if result.MatchedCount != 1 {
		return mongo.ErrNoDocuments
	}

	return nil
}

// Remove deletes an appointment. Only manual events may be removed; client
// appointments are cancelled instead, which the service layer enforces.
func (r AppointmentRepository) Remove(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.DB.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}

	if result.DeletedCount != 1 {
		return mongo.ErrNoDocuments
	}

	return nil
}
