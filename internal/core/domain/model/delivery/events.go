package delivery

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// DomainEvent marks a fact recorded by the Delivery aggregate that another
// aggregate must react to. Events are drained by the command handler and
// applied within the same transaction as the delivery write, so a delivery
// never advances while its order stays behind.
type DomainEvent interface {
	EventName() string
}

// PickedUpEvent is recorded when a courier collects the order.
// The owning order must move to "out for delivery".
type PickedUpEvent struct {
	DeliveryID kernel.UUID
	OrderID    kernel.UUID
	OccurredAt time.Time
}

// EventName returns the event type identifier.
func (PickedUpEvent) EventName() string { return "DeliveryPickedUp" }

// DeliveredEvent is recorded when the delivery completes.
// The owning order must move to "delivered" with the actual delivery time.
type DeliveredEvent struct {
	DeliveryID  kernel.UUID
	OrderID     kernel.UUID
	DeliveredAt time.Time
}

// EventName returns the event type identifier.
func (DeliveredEvent) EventName() string { return "DeliveryDelivered" }
