package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// CreateDeliveryCommandHandler starts tracking the delivery of an order.
// Verifies that the order exists and that no delivery tracks it yet, then
// persists a new Pending delivery record.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryOrderUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created delivery.
// Fails with an object-not-found error when the order is absent and with an
// invalid-state error when a delivery already exists for the order. The
// uniqueness of the order reference is additionally store-enforced, so a
// concurrent duplicate creation loses on commit.
func (h CreateDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CreateDeliveryCommand,
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
	orderRepo := uow.OrderRepository()

	if _, err := orderRepo.Get(ctx, command.OrderID()); err != nil {
		return nil, err
	}

	exists, err := deliveryRepo.ExistsByOrderID(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewInvalidStateError(
			fmt.Sprintf("delivery already exists for order %s", command.OrderID()),
		)
	}

	newDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(),
		command.OrderID(),
		command.Fee(),
		command.DistanceKm(),
		command.DeliveryNotes(),
	)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, newDelivery); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newDelivery, nil
}
