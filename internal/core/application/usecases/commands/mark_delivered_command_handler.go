package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
)

// MarkDeliveredCommandHandler completes a delivery and marks the owning order
// as delivered, with the same timestamp, in the same transaction.
type MarkDeliveredCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for completion reports.
func NewMarkDeliveredCommandHandler(uowFactory DeliveryOrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion and returns the updated delivery.
// Fails with a value-invalid error when the reporting courier is not the one
// assigned, and with an invalid-state error when the delivery is not PickedUp.
func (h MarkDeliveredCommandHandler) Handle(
	ctx context.Context,
	command MarkDeliveredCommand,
) (*delivery.Delivery, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	targetDelivery, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return nil, err
	}

	if assigned := targetDelivery.Courier(); assigned == nil || !assigned.IsEqual(command.CourierID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"courierId",
			fmt.Errorf("delivery %s is not assigned to courier %s",
				command.DeliveryID(), command.CourierID()),
		)
	}

	if err = targetDelivery.Deliver(); err != nil {
		return nil, err
	}

	if err = syncOrderWithDeliveryEvents(ctx, uow.OrderRepository(), targetDelivery); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, targetDelivery); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return targetDelivery, nil
}
