package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to start tracking the delivery
// of a confirmed order. The fee must be known at this point; the distance is
// optional and only sharpens the initial delivery estimate.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(orderID, 4.99, nil, "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	fee           float64
	distanceKm    *float64
	deliveryNotes string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to track a new delivery.
// Validates that the order ID is valid, the fee is not negative, and the
// distance, when given, is positive.
func NewCreateDeliveryCommand(
	orderID kernel.UUID,
	fee float64,
	distanceKm *float64,
	deliveryNotes string,
) (CreateDeliveryCommand, error) {
	command := CreateDeliveryCommand{
		deliveryNotes: deliveryNotes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setFee(fee),
		command.setDistanceKm(distanceKm),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Fee returns the delivery fee.
func (c CreateDeliveryCommand) Fee() float64 {
	return c.fee
}

// DistanceKm returns the optional restaurant-to-customer distance.
func (c CreateDeliveryCommand) DistanceKm() *float64 {
	return c.distanceKm
}

// DeliveryNotes returns free-form delivery instructions.
func (c CreateDeliveryCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidError("fee must not be negative")
	}
	c.fee = fee
	return nil
}

func (c *CreateDeliveryCommand) setDistanceKm(distanceKm *float64) error {
	if distanceKm != nil && *distanceKm <= 0 {
		return errs.NewValueIsInvalidError("distanceKm must be greater than 0")
	}
	c.distanceKm = distanceKm
	return nil
}
