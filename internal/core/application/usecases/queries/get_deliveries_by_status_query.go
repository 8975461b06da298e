package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveriesByStatusQueryIsNotConstructed = errors.New(
	"GetDeliveriesByStatusQuery must be created via NewGetDeliveriesByStatusQuery constructor",
)

// GetDeliveriesByStatusQuery retrieves every delivery currently in a status.
// Used by dispatch monitoring, most often with Pending to find work awaiting
// a courier.
type GetDeliveriesByStatusQuery struct {
	status delivery.Status

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByStatusQuery creates a status-filtered listing query.
func NewGetDeliveriesByStatusQuery(status delivery.Status) (GetDeliveriesByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetDeliveriesByStatusQuery{}, err
	}

	return GetDeliveriesByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByStatusQueryIsNotConstructed)
}

// Status returns the status to filter on.
func (q GetDeliveriesByStatusQuery) Status() delivery.Status {
	return q.status
}
