package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
)

// DeleteDeliveryCommandHandler removes a cancelled delivery record.
type DeleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDeleteDeliveryCommandHandler creates a handler for record removal.
func NewDeleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the record. Fails with an invalid-state error when the
// delivery is in any status other than Cancelled.
func (h DeleteDeliveryCommandHandler) Handle(ctx context.Context, command DeleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	targetDelivery, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	if targetDelivery.Status() != delivery.Cancelled {
		return errs.NewInvalidStateError(
			fmt.Sprintf("only cancelled deliveries can be deleted, delivery %s is %s",
				command.DeliveryID(), targetDelivery.Status()),
		)
	}

	if err = deliveryRepo.Delete(ctx, command.DeliveryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
