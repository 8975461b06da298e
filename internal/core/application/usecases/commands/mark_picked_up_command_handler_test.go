package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkPickedUpCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	assigned := newAssignedDelivery(t, courierID)
	trackedOrder := newConfirmedOrder(t)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)

	deliveryRepo.On("Get", ctx, assigned.ID()).Return(assigned, nil)
	orderRepo.On("Get", ctx, assigned.OrderID()).Return(trackedOrder, nil)
	orderRepo.On("Update", ctx, trackedOrder).Return(nil)
	deliveryRepo.On("Update", ctx, assigned).Return(nil)

	handler := commands.NewMarkPickedUpCommandHandler(deliveryOrderUoWFactory{uow})
	cmd, err := commands.NewMarkPickedUpCommand(assigned.ID(), courierID)
	require.NoError(t, err)

	pickedUp, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, pickedUp)
	assert.Equal(t, delivery.PickedUp, pickedUp.Status())
	assert.NotNil(t, pickedUp.PickedUpAt())
	assert.Equal(t, order.OutForDelivery, trackedOrder.Status())
	assert.Empty(t, pickedUp.Events())

	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkPickedUpCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()

	assigned := newAssignedDelivery(t, kernel.NewUUID())
	otherCourierID := kernel.NewUUID()

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("Get", ctx, assigned.ID()).Return(assigned, nil)

	handler := commands.NewMarkPickedUpCommandHandler(deliveryOrderUoWFactory{uow})
	cmd, err := commands.NewMarkPickedUpCommand(assigned.ID(), otherCourierID)
	require.NoError(t, err)

	pickedUp, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, pickedUp)
	assert.Equal(t, delivery.Assigned, assigned.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkPickedUpCommandHandler_Handle_DeliveryNotAssigned(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	alreadyPickedUp := newPickedUpDelivery(t, courierID)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("Get", ctx, alreadyPickedUp.ID()).Return(alreadyPickedUp, nil)

	handler := commands.NewMarkPickedUpCommandHandler(deliveryOrderUoWFactory{uow})
	cmd, err := commands.NewMarkPickedUpCommand(alreadyPickedUp.ID(), courierID)
	require.NoError(t, err)

	pickedUp, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Nil(t, pickedUp)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkPickedUpCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("Get", ctx, deliveryID).
		Return(nil, errs.NewObjectNotFoundError("delivery", deliveryID.String()))

	handler := commands.NewMarkPickedUpCommandHandler(deliveryOrderUoWFactory{uow})
	cmd, err := commands.NewMarkPickedUpCommand(deliveryID, kernel.NewUUID())
	require.NoError(t, err)

	pickedUp, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, pickedUp)
}
