package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// CancelDeliveryCommandHandler abandons a delivery. Cancelling an in-flight
// delivery frees its courier for new assignments immediately.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for cancellations.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the updated delivery.
// Fails with an invalid-state error when the delivery is already terminal.
func (h CancelDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CancelDeliveryCommand,
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

	if err = targetDelivery.Cancel(command.Reason()); err != nil {
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
