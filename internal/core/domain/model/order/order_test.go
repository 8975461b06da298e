package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create confirmed order", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Nil(t, o.ActualDeliveryTime())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var zero kernel.UUID

		o, err := order.NewOrder(zero)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_MarkOutForDelivery(t *testing.T) {
	t.Run("should move confirmed order out for delivery", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, o.MarkOutForDelivery())

		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("should fail when already out for delivery", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, o.MarkOutForDelivery())

		require.ErrorIs(t, o.MarkOutForDelivery(), errs.ErrInvalidState)
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	t.Run("should record actual delivery time", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, o.MarkOutForDelivery())
		deliveredAt := time.Now().UTC()

		require.NoError(t, o.MarkDelivered(deliveredAt))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.ActualDeliveryTime())
		assert.Equal(t, deliveredAt, *o.ActualDeliveryTime())
	})

	t.Run("should fail before order is out for delivery", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)

		require.ErrorIs(t, o.MarkDelivered(time.Now().UTC()), errs.ErrInvalidState)
		assert.Nil(t, o.ActualDeliveryTime())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with delivery time", func(t *testing.T) {
		id := kernel.NewUUID()
		deliveredAt := time.Now().UTC()

		o, err := order.RestoreOrder(id, order.Delivered, &deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, deliveredAt, *o.ActualDeliveryTime())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), order.Unknown, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
