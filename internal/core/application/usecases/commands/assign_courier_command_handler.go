package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
)

// activeCourierStatuses are the statuses in which a delivery occupies its
// courier. A courier may hold at most one delivery in these statuses.
var activeCourierStatuses = []delivery.Status{delivery.Assigned, delivery.PickedUp}

// AssignCourierCommandHandler binds a courier to a pending delivery.
//
// The exclusivity rule is enforced twice: a read-side check here produces the
// friendly error, and the store's partial unique index on active courier
// assignments serializes concurrent requests that both pass the check; the
// loser's commit fails with the same invalid-state error.
type AssignCourierCommandHandler struct {
	uowFactory DeliveryUserUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory DeliveryUserUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment and returns the updated delivery.
// Fails with object-not-found when the delivery or courier is absent, with a
// value-invalid error when the user lacks the courier role, and with an
// invalid-state error when the delivery is not pending or the courier already
// has an active delivery.
func (h AssignCourierCommandHandler) Handle(
	ctx context.Context,
	command AssignCourierCommand,
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
	userRepo := uow.UserRepository()

	targetDelivery, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return nil, err
	}

	courier, err := userRepo.Get(ctx, command.CourierID())
	if err != nil {
		return nil, err
	}

	active, err := deliveryRepo.GetByCourierAndStatuses(ctx, command.CourierID(), activeCourierStatuses)
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return nil, errs.NewInvalidStateError("courier already has an active delivery")
	}

	if err = targetDelivery.Assign(courier); err != nil {
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
