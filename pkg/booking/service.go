package booking

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a bookable salon treatment. Its id and duration are all the
// scheduling engine needs; the rest is catalog presentation data.
type Service struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	Name            string             `json:"name" bson:"name" validate:"required"`
	DurationMinutes int                `json:"durationMinutes" bson:"durationMinutes" validate:"required,gt=0"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	PriceRange      string             `json:"priceRange,omitempty" bson:"priceRange,omitempty"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	LastModifiedAt  time.Time          `json:"lastModifiedAt" bson:"lastModifiedAt"`
}
