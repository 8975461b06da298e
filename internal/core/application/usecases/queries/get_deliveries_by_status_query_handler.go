package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveriesByStatusQueryHandler lists deliveries in a given status,
// newest first.
type GetDeliveriesByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByStatusQueryHandler creates a handler for status listings.
func NewGetDeliveriesByStatusQueryHandler(db *gorm.DB) GetDeliveriesByStatusQueryHandler {
	return GetDeliveriesByStatusQueryHandler{db: db}
}

// Handle executes the listing. An empty result is not an error.
func (h GetDeliveriesByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByStatusQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE status = ?
		ORDER BY created_at DESC
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}

	return collectDeliveryRows(rows)
}
