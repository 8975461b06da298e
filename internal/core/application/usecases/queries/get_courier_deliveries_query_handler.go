package queries

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetCourierDeliveriesQueryHandler lists a courier's deliveries, most
// recently assigned first. Cancelled deliveries keep no courier reference,
// so cancellations from the Assigned status do not appear in history.
type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierDeliveriesQueryHandler creates a handler for courier listings.
func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

// Handle executes the listing. An empty result is not an error.
func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE courier_id = ?
	`
	args := []any{query.CourierID().Bytes()}

	if query.ActiveOnly() {
		sql += ` AND status IN (?, ?)`
		args = append(args, int(delivery.Assigned), int(delivery.PickedUp))
	}
	sql += ` ORDER BY assigned_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}

	return collectDeliveryRows(rows)
}
