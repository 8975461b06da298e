package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
)

// MarkPickedUpCommandHandler records that the assigned courier collected the
// order, and moves the owning order to "out for delivery" in the same
// transaction.
type MarkPickedUpCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

// NewMarkPickedUpCommandHandler creates a handler for pickup reports.
func NewMarkPickedUpCommandHandler(uowFactory DeliveryOrderUoWFactory) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup and returns the updated delivery.
// Fails with a value-invalid error when the reporting courier is not the one
// assigned, and with an invalid-state error when the delivery is not Assigned.
func (h MarkPickedUpCommandHandler) Handle(
	ctx context.Context,
	command MarkPickedUpCommand,
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

	if err = targetDelivery.Pickup(); err != nil {
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
