package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelDeliveryCommand(t *testing.T) {
	t.Run("should keep the given reason", func(t *testing.T) {
		cmd, err := commands.NewCancelDeliveryCommand(kernel.NewUUID(), "customer changed their mind")
		require.NoError(t, err)
		assert.Equal(t, "customer changed their mind", cmd.Reason())
	})

	t.Run("should default the reason when absent", func(t *testing.T) {
		cmd, err := commands.NewCancelDeliveryCommand(kernel.NewUUID(), "")
		require.NoError(t, err)
		assert.Equal(t, commands.DefaultCancelReason, cmd.Reason())
	})

	t.Run("should fail with empty delivery id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := commands.NewCancelDeliveryCommand(zero, "reason")
		require.Error(t, err)
	})
}

func TestCancelDeliveryCommandHandler_Handle_CancelPending(t *testing.T) {
	ctx := t.Context()

	pending := newPendingDelivery(t)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("Get", ctx, pending.ID()).Return(pending, nil)
	deliveryRepo.On("Update", ctx, pending).Return(nil)

	handler := commands.NewCancelDeliveryCommandHandler(deliveryUoWFactory{uow})
	cmd, err := commands.NewCancelDeliveryCommand(pending.ID(), "restaurant closed")
	require.NoError(t, err)

	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, cancelled)
	assert.Equal(t, delivery.Cancelled, cancelled.Status())

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelDeliveryCommandHandler_Handle_CancelAssignedFreesCourier(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	assigned := newAssignedDelivery(t, courierID)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("Get", ctx, assigned.ID()).Return(assigned, nil)
	deliveryRepo.On("Update", ctx, assigned).Return(nil)

	handler := commands.NewCancelDeliveryCommandHandler(deliveryUoWFactory{uow})
	cmd, err := commands.NewCancelDeliveryCommand(assigned.ID(), "")
	require.NoError(t, err)

	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Cancelled, cancelled.Status())
	assert.Nil(t, cancelled.Courier())
	assert.Nil(t, cancelled.AssignedAt())
}

func TestCancelDeliveryCommandHandler_Handle_TerminalDelivery(t *testing.T) {
	ctx := t.Context()

	alreadyCancelled := newCancelledDelivery(t)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	deliveryRepo.On("Get", ctx, alreadyCancelled.ID()).Return(alreadyCancelled, nil)

	handler := commands.NewCancelDeliveryCommandHandler(deliveryUoWFactory{uow})
	cmd, err := commands.NewCancelDeliveryCommand(alreadyCancelled.ID(), "again")
	require.NoError(t, err)

	cancelled, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Nil(t, cancelled)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
