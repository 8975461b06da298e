package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler applies administrative status overrides.
//
// Only one-step-forward targets are honored: PICKED_UP requires the delivery
// to be ASSIGNED, DELIVERED requires PICKED_UP, and CANCELLED is allowed from
// any non-terminal status. PENDING is never a valid target (a record cannot
// be reset), and ASSIGNED requires a courier, so assignment must go through
// the dedicated operation.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status overrides.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryOrderUoWFactory,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override and returns the updated delivery.
// Order-side effects of pickup and completion apply exactly as they do for
// the courier-facing operations, in the same transaction.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateDeliveryStatusCommand,
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

	switch command.TargetStatus() {
	case delivery.PickedUp:
		err = targetDelivery.Pickup()
	case delivery.Delivered:
		err = targetDelivery.Deliver()
	case delivery.Cancelled:
		err = targetDelivery.Cancel(DefaultCancelReason)
	default:
		err = errs.NewInvalidStateError(
			fmt.Sprintf("%s is not a valid target status for an override", command.TargetStatus()),
		)
	}
	if err != nil {
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
