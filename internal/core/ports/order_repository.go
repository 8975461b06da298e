package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository is the dispatch subsystem's lookup into the order store.
// Orders are created and managed elsewhere; dispatch reads them to validate
// delivery creation and writes back only the two fields the delivery
// lifecycle owns.
type OrderRepository interface {
	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update persists the dispatch-owned fields of an order: fulfilment
	// status and actual delivery time.
	Update(ctx context.Context, aggregate *order.Order) error
}
