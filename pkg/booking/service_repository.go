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

// ServiceRepositoryInterface is the interface for a ServiceRepository
type ServiceRepositoryInterface interface {
	Add(ctx context.Context, service *Service) error
	FindByID(ctx context.Context, id string) (*Service, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Service, error)
	FindActive(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, service *Service) error
}

// ServiceRepository does everything related to storing catalog services
type ServiceRepository struct {
	DB     *mongo.Collection
	Logger logger.Interface
}

// Add adds a service
func (r ServiceRepository) Add(ctx context.Context, service *Service) error {
	service.ID = primitive.NewObjectID()
	service.CreatedAt = time.Now()
	service.LastModifiedAt = time.Now()

	_, err := r.DB.InsertOne(ctx, service)
	return err
}

// FindByID finds a service by ID
func (r ServiceRepository) FindByID(ctx context.Context, id string) (*Service, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var service = Service{}
	result := r.DB.FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	err = result.Decode(&service)
	if err != nil {
		return nil, err
	}

	return &service, nil
}

// FindByIDs finds all services whose id is in the given set
func (r ServiceRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Service, error) {
	var services []*Service

	cursor, err := r.DB.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &services)
	if err != nil {
		return nil, err
	}

	return services, nil
}

// FindActive finds all services the catalog currently offers
func (r ServiceRepository) FindActive(ctx context.Context) ([]*Service, error) {
	var services []*Service

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"name": 1})

	cursor, err := r.DB.Find(ctx, bson.M{"isActive": true}, findOptions)
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &services)
	if err != nil {
		return nil, err
	}

	return services, nil
}

// Update updates a service
func (r ServiceRepository) Update(ctx context.Context, service *Service) error {
	service.LastModifiedAt = time.Now()

	result, err := r.DB.UpdateOne(ctx, bson.M{"_id": service.ID}, bson.M{"$set": service})
	if err != nil {
		return err
	}

	if result.MatchedCount != 1 {
		return mongo.ErrNoDocuments
	}

	return nil
}
