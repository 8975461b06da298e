package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to bind a courier to a pending
// delivery. The courier must carry the courier role and must not already hold
// an active delivery (the exclusivity rule).
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(deliveryID, courierID)
//	if err != nil {
//	    return err
//	}
//	assigned, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidState) {
//	    // delivery not pending, or courier already busy
//	}
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to a delivery.
func NewAssignCourierCommand(deliveryID, courierID kernel.UUID) (AssignCourierCommand, error) {
	command := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// DeliveryID returns the delivery to assign.
func (c AssignCourierCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier to bind.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignCourierCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
