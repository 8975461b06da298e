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

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	pickedUp := newPickedUpDelivery(t, courierID)
	trackedOrder := newOutForDeliveryOrder(t)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)

	deliveryRepo.On("Get", ctx, pickedUp.ID()).Return(pickedUp, nil)
	orderRepo.On("Get", ctx, pickedUp.OrderID()).Return(trackedOrder, nil)
	orderRepo.On("Update", ctx, trackedOrder).Return(nil)
	deliveryRepo.On("Update", ctx, pickedUp).Return(nil)

	handler := commands.NewMarkDeliveredCommandHandler(deliveryOrderUoWFactory{uow})
	cmd, err := commands.NewMarkDeliveredCommand(pickedUp.ID(), courierID)
	require.NoError(t, err)

	delivered, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, delivered)
	assert.Equal(t, delivery.Delivered, delivered.Status())
	require.NotNil(t, delivered.DeliveredAt())
	assert.Equal(t, order.Delivered, trackedOrder.Status())
	require.NotNil(t, trackedOrder.ActualDeliveryTime())
	assert.Equal(t, *delivered.DeliveredAt(), *trackedOrder.ActualDeliveryTime())
	assert.Empty(t, delivered.Events())

	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()

	pickedUp := newPickedUpDelivery(t, kernel.NewUUID())

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("Get", ctx, pickedUp.ID()).Return(pickedUp, nil)

	handler := commands.NewMarkDeliveredCommandHandler(deliveryOrderUoWFactory{uow})
	cmd, err := commands.NewMarkDeliveredCommand(pickedUp.ID(), kernel.NewUUID())
	require.NoError(t, err)

	delivered, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, delivered)
	assert.Equal(t, delivery.PickedUp, pickedUp.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkDeliveredCommandHandler_Handle_DeliveryNotPickedUp(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	assigned := newAssignedDelivery(t, courierID)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("Get", ctx, assigned.ID()).Return(assigned, nil)

	handler := commands.NewMarkDeliveredCommandHandler(deliveryOrderUoWFactory{uow})
	cmd, err := commands.NewMarkDeliveredCommand(assigned.ID(), courierID)
	require.NoError(t, err)

	delivered, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Nil(t, delivered)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
