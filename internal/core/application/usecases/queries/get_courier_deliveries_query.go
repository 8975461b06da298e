package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
	"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
)

// GetCourierDeliveriesQuery retrieves a courier's delivery history, most
// recently assigned first. When activeOnly is set, only deliveries currently
// occupying the courier (Assigned or PickedUp) are returned.
type GetCourierDeliveriesQuery struct {
	courierID  kernel.UUID
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetCourierDeliveriesQuery creates a query for a courier's full history.
func NewGetCourierDeliveriesQuery(courierID kernel.UUID) (GetCourierDeliveriesQuery, error) {
	return newCourierDeliveriesQuery(courierID, false)
}

// NewGetCourierActiveDeliveriesQuery creates a query for a courier's current workload.
func NewGetCourierActiveDeliveriesQuery(courierID kernel.UUID) (GetCourierDeliveriesQuery, error) {
	return newCourierDeliveriesQuery(courierID, true)
}

func newCourierDeliveriesQuery(courierID kernel.UUID, activeOnly bool) (GetCourierDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, err
	}

	return GetCourierDeliveriesQuery{
		courierID:  courierID,
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier whose deliveries are requested.
func (q GetCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// ActiveOnly reports whether the query is limited to the current workload.
func (q GetCourierDeliveriesQuery) ActiveOnly() bool {
	return q.activeOnly
}
