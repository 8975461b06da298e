package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New(
	"Order must be created via NewOrder or RestoreOrder constructor",
)

// Order is the slice of the food order visible to the dispatch subsystem.
// The order's own business rules (items, pricing, coupons) live elsewhere;
// dispatch only reads its identity and drives the two fields the delivery
// lifecycle owns: the fulfilment status and the actual delivery timestamp.
type Order struct {
	id                 kernel.UUID
	status             Status
	actualDeliveryTime *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Confirmed status, the state in which it is
// ready for dispatch.
func NewOrder(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:     id,
		status: Confirmed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(id kernel.UUID, status Status, actualDeliveryTime *time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                 id,
		status:             status,
		actualDeliveryTime: actualDeliveryTime,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the order's fulfilment status.
func (o *Order) Status() Status {
	return o.status
}

// ActualDeliveryTime returns the moment the order reached the customer,
// or nil while it has not.
func (o *Order) ActualDeliveryTime() *time.Time {
	return o.actualDeliveryTime
}

// MarkOutForDelivery moves the order to OutForDelivery when the courier
// collects it.
func (o *Order) MarkOutForDelivery() error {
	newStatus, err := o.status.OutForDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered moves the order to Delivered and records the actual delivery
// timestamp, which always equals the delivery record's deliveredAt.
func (o *Order) MarkDelivered(deliveredAt time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.actualDeliveryTime = &deliveredAt
	return nil
}
