package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func newCourier(t *testing.T) *user.User {
	t.Helper()
	courier, err := user.NewUser(kernel.NewUUID(), "Test Courier", user.Courier)
	require.NoError(t, err)
	return courier
}

func newCustomer(t *testing.T) *user.User {
	t.Helper()
	customer, err := user.NewUser(kernel.NewUUID(), "Test Customer", user.Customer)
	require.NoError(t, err)
	return customer
}

func newConfirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func newOutForDeliveryOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newConfirmedOrder(t)
	require.NoError(t, o.MarkOutForDelivery())
	return o
}

func newPendingDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), 5.0, nil, "")
	require.NoError(t, err)
	return d
}

func newAssignedDelivery(t *testing.T, courierID kernel.UUID) *delivery.Delivery {
	t.Helper()
	now := time.Now().UTC()
	assignedAt := now.Add(-10 * time.Minute)

	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), &courierID,
		delivery.Assigned,
		&assignedAt, nil, nil,
		now.Add(5*time.Minute), now.Add(25*time.Minute),
		5.0, nil, "", "",
	)
	require.NoError(t, err)
	return d
}

func newPickedUpDelivery(t *testing.T, courierID kernel.UUID) *delivery.Delivery {
	t.Helper()
	now := time.Now().UTC()
	assignedAt := now.Add(-20 * time.Minute)
	pickedUpAt := now.Add(-10 * time.Minute)

	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), &courierID,
		delivery.PickedUp,
		&assignedAt, &pickedUpAt, nil,
		assignedAt.Add(10*time.Minute), now.Add(10*time.Minute),
		5.0, nil, "", "",
	)
	require.NoError(t, err)
	return d
}

func newCancelledDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	now := time.Now().UTC()

	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		delivery.Cancelled,
		nil, nil, nil,
		now, now,
		5.0, nil, "cancelled in test", "",
	)
	require.NoError(t, err)
	return d
}
