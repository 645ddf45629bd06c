package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// phonePattern matches a canonical Israeli mobile number
var phonePattern = regexp.MustCompile(`^05[0-9]{8}$`)

// Client is a salon customer, looked up by phone as the natural key
type Client struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	FullName       string             `json:"fullName" bson:"fullName" validate:"required"`
	Phone          string             `json:"phone" bson:"phone" validate:"required"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	LastModifiedAt time.Time          `json:"lastModifiedAt" bson:"lastModifiedAt"`
}

// CanonicalPhone strips separators from a phone number and checks it against
// the Israeli mobile pattern 05XXXXXXXX
func CanonicalPhone(raw string) (string, error) {
	phone := strings.NewReplacer("-", "", " ", "").Replace(raw)

	if !phonePattern.MatchString(phone) {
		return "", fmt.Errorf("phone number %q is not a valid Israeli mobile number", raw)
	}

	return phone, nil
}
