package booking

import (
	"testing"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAggregateDuration(t *testing.T) {
	haircut := &Service{ID: primitive.NewObjectID(), Name: "Haircut", DurationMinutes: 30}
	color := &Service{ID: primitive.NewObjectID(), Name: "Color", DurationMinutes: 45}
	lookup := NewServiceLookup([]*Service{haircut, color})

	unknown := primitive.NewObjectID()

	var durationTests = []struct {
		name    string
		ids     []primitive.ObjectID
		policy  MissingServicePolicy
		out     int
		wantErr error
	}{
		{
			// Case empty selection
			"empty", nil, RejectMissing, 0, nil,
		},
		{
			// Case single service
			"single", []primitive.ObjectID{haircut.ID}, RejectMissing, 30, nil,
		},
		{
			// Case combination sums the durations
			"combination", []primitive.ObjectID{haircut.ID, color.ID}, RejectMissing, 75, nil,
		},
		{
			// Case unknown service rejected
			"unknown rejected", []primitive.ObjectID{haircut.ID, unknown}, RejectMissing, 0, ErrUnknownService,
		},
		{
			// Case unknown service ignored
			"unknown ignored", []primitive.ObjectID{haircut.ID, unknown}, IgnoreMissing, 30, nil,
		},
	}

	for _, tt := range durationTests {
		got, err := AggregateDuration(tt.ids, lookup, tt.policy)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AggregateDuration %s: error = %v, want %v", tt.name, err, tt.wantErr)
			}
			continue
		}

		if err != nil {
			t.Errorf("AggregateDuration %s: %v", tt.name, err)
			continue
		}

		if got != tt.out {
			t.Errorf("AggregateDuration %s: got %d, want %d", tt.name, got, tt.out)
		}
	}
}

func TestCanonicalPhone(t *testing.T) {
	var phoneTests = []struct {
		in      string
		out     string
		wantErr bool
	}{
		{"0521234567", "0521234567", false},
		{"052-123-4567", "0521234567", false},
		{"052 123 4567", "0521234567", false},
		{"052-1234567", "0521234567", false},
		{"03-1234567", "", true},
		{"+972521234567", "", true},
		{"05212345", "", true},
		{"052123456789", "", true},
		{"", "", true},
	}

	for _, tt := range phoneTests {
		got, err := CanonicalPhone(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("CanonicalPhone(%q): error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.out {
			t.Errorf("CanonicalPhone(%q): got %q, want %q", tt.in, got, tt.out)
		}
	}
}
