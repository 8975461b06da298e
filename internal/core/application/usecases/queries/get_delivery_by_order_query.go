package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveryByOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryByOrderQuery must be created via NewGetDeliveryByOrderQuery constructor",
)

// GetDeliveryByOrderQuery retrieves the delivery record tracking an order.
// At most one delivery exists per order, the store enforces the uniqueness.
type GetDeliveryByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByOrderQuery creates a query that looks a delivery up by its order.
func NewGetDeliveryByOrderQuery(orderID kernel.UUID) (GetDeliveryByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryByOrderQuery{}, err
	}

	return GetDeliveryByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByOrderQueryIsNotConstructed)
}

// OrderID returns the order whose delivery is requested.
func (q GetDeliveryByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
