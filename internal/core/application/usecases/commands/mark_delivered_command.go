package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a courier reporting that the order reached
// the customer. The reporting courier must be the one assigned to the delivery.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to complete a delivery.
func NewMarkDeliveredCommand(deliveryID, courierID kernel.UUID) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setCourierID(courierID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// DeliveryID returns the delivery being completed.
func (c MarkDeliveredCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier reporting the completion.
func (c MarkDeliveredCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *MarkDeliveredCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *MarkDeliveredCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
