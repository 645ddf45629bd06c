package booking

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noashair/salon-backend/pkg/logger"
)

// ClientRepositoryInterface is the interface for a ClientRepository
type ClientRepositoryInterface interface {
	Add(ctx context.Context, client *Client) error
	FindByID(ctx context.Context, id string) (*Client, error)
	FindByPhone(ctx context.Context, phone string) (*Client, error)
	Update(ctx context.Context, client *Client) error
}

// ClientRepository does everything related to storing clients
type ClientRepository struct {
	DB     *mongo.Collection
	Logger logger.Interface
}

// Add adds a client
func (r ClientRepository) Add(ctx context.Context, client *Client) error {
	client.ID = primitive.NewObjectID()
	client.CreatedAt = time.Now()
	client.LastModifiedAt = time.Now()

	_, err := r.DB.InsertOne(ctx, client)
	return err
}

// FindByID finds a client by ID
func (r ClientRepository) FindByID(ctx context.Context, id string) (*Client, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var client = Client{}
	result := r.DB.FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	err = result.Decode(&client)
	if err != nil {
		return nil, err
	}

	return &client, nil
}

// FindByPhone finds a client by its canonical phone number. The phone is the
// natural key clients are merged on; a miss returns mongo.ErrNoDocuments.
func (r ClientRepository) FindByPhone(ctx context.Context, phone string) (*Client, error) {
	var client = Client{}

	result := r.DB.FindOne(ctx, bson.M{"phone": phone})
	if result.Err() != nil {
		return nil, result.Err()
	}

	err := result.Decode(&client)
	if err != nil {
		return nil, err
	}

	return &client, nil
}

// Update updates a client
func (r ClientRepository) Update(ctx context.Context, client *Client) error {
	client.LastModifiedAt = time.Now()

	result, err := r.DB.UpdateOne(ctx, bson.M{"_id": client.ID}, bson.M{"$set": client})
	if err != nil {
		return err
	}

	if result.MatchedCount != 1 {
		return mongo.ErrNoDocuments
	}

	return nil
}
