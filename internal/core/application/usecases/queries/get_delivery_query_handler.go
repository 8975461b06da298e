package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves a single delivery read model by ID.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery lookups.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// delivery carries the requested ID.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}

	deliveries, err := collectDeliveryRows(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}

	if len(deliveries) == 0 {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID().String())
	}

	return deliveries[0], nil
}
