package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents an administrative request to move a
// delivery to a target status. It re-derives the same transitions as the
// courier-facing operations and never jumps more than one step forward.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	targetStatus delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates an administrative status override command.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	targetStatus delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	command := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery to move.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// TargetStatus returns the requested status.
func (c UpdateDeliveryStatusCommand) TargetStatus() delivery.Status {
	return c.targetStatus
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTargetStatus(targetStatus delivery.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}
	c.targetStatus = targetStatus
	return nil
}
