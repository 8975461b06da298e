package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents a courier reporting that the order left the
// restaurant. The reporting courier must be the one assigned to the delivery.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to mark a delivery as picked up.
func NewMarkPickedUpCommand(deliveryID, courierID kernel.UUID) (MarkPickedUpCommand, error) {
	command := MarkPickedUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setCourierID(courierID),
	); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// DeliveryID returns the delivery being picked up.
func (c MarkPickedUpCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier reporting the pickup.
func (c MarkPickedUpCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *MarkPickedUpCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *MarkPickedUpCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
