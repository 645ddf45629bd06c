package booking

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnknownService is returned when a selected service id has no catalog entry
var ErrUnknownService = errors.New("unknown service id")

// MissingServicePolicy decides what happens when a selected service id is not
// found during duration aggregation
type MissingServicePolicy int

const (
	// IgnoreMissing lets an unknown service id contribute zero minutes
	IgnoreMissing MissingServicePolicy = iota
	// RejectMissing fails the aggregation on the first unknown service id
	RejectMissing
)

// ServiceLookup indexes services by id
type ServiceLookup map[primitive.ObjectID]*Service

// NewServiceLookup builds a ServiceLookup from a service list
func NewServiceLookup(services []*Service) ServiceLookup {
	lookup := make(ServiceLookup, len(services))
	for _, service := range services {
		lookup[service.ID] = service
	}
	return lookup
}

// AggregateDuration sums the durations of the selected services into one
// booking length in minutes. An empty selection aggregates to 0; callers must
// treat 0 as "no booking possible", never as a zero-length appointment.
func AggregateDuration(serviceIDs []primitive.ObjectID, lookup ServiceLookup, policy MissingServicePolicy) (int, error) {
	total := 0

	for _, id := range serviceIDs {
		service, ok := lookup[id]
		if !ok {
			if policy == RejectMissing {
				return 0, errors.Wrap(ErrUnknownService, id.Hex())
			}
			continue
		}

		total += service.DurationMinutes
	}

	return total, nil
}
