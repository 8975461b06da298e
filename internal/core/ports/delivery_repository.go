package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Write operations use conditional updates keyed on the status captured at
// load time, so concurrent transitions on one record cannot overwrite each
// other.
type DeliveryRepository interface {
	// Add persists a new delivery. Fails if a delivery already exists for the
	// same order (one delivery per order is store-enforced).
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery. The update only applies
	// if the stored status still matches the status the aggregate was loaded
	// with; otherwise an invalid-state error is returned.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the single delivery tracking the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetByCourier retrieves all deliveries ever handled by the courier,
	// most recently assigned first.
	GetByCourier(ctx context.Context, courierID kernel.UUID) ([]*delivery.Delivery, error)

	// GetByStatus retrieves all deliveries currently in the given status.
	GetByStatus(ctx context.Context, status delivery.Status) ([]*delivery.Delivery, error)

	// GetActive retrieves all deliveries in a non-terminal status.
	GetActive(ctx context.Context) ([]*delivery.Delivery, error)

	// GetByCourierAndStatuses retrieves the courier's deliveries in any of the
	// given statuses. Used by the exclusivity check.
	GetByCourierAndStatuses(
		ctx context.Context, courierID kernel.UUID, statuses []delivery.Status,
	) ([]*delivery.Delivery, error)

	// GetByAssignedDateRange retrieves deliveries assigned within [from, to].
	GetByAssignedDateRange(ctx context.Context, from, to time.Time) ([]*delivery.Delivery, error)

	// ExistsByOrderID reports whether a delivery already tracks the order.
	ExistsByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error)

	// CountActiveByCourier counts the courier's deliveries in Assigned or
	// PickedUp status.
	CountActiveByCourier(ctx context.Context, courierID kernel.UUID) (int64, error)

	// Delete removes a delivery record. Callers must ensure the record is
	// Cancelled before deleting; the repository only removes rows.
	Delete(ctx context.Context, id kernel.UUID) error

	// PurgeCancelledBefore removes all Cancelled deliveries whose last update
	// is older than the cutoff and returns the number of rows removed.
	PurgeCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
