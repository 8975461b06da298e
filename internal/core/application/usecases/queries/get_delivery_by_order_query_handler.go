package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByOrderQueryHandler finds the delivery tracking a given order.
type GetDeliveryByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderQueryHandler creates a handler for order-based lookups.
func NewGetDeliveryByOrderQueryHandler(db *gorm.DB) GetDeliveryByOrderQueryHandler {
	return GetDeliveryByOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// delivery tracks the order.
func (h GetDeliveryByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByOrderQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}

	deliveries, err := collectDeliveryRows(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}

	if len(deliveries) == 0 {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery for order", query.OrderID().String())
	}

	return deliveries[0], nil
}
