package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrIsCourierAvailableQueryIsNotConstructed = errors.New(
	"IsCourierAvailableQuery must be created via NewIsCourierAvailableQuery constructor",
)

// IsCourierAvailableQuery checks whether a courier can take a new delivery.
// A courier is available exactly when no delivery in the Assigned or PickedUp
// status references them.
type IsCourierAvailableQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIsCourierAvailableQuery creates an availability check for a courier.
func NewIsCourierAvailableQuery(courierID kernel.UUID) (IsCourierAvailableQuery, error) {
	if err := courierID.Validate(); err != nil {
		return IsCourierAvailableQuery{}, err
	}

	return IsCourierAvailableQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q IsCourierAvailableQuery) Validate() error {
	return q.guard.Validate(ErrIsCourierAvailableQueryIsNotConstructed)
}

// CourierID returns the courier whose availability is checked.
func (q IsCourierAvailableQuery) CourierID() kernel.UUID {
	return q.courierID
}
