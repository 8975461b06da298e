package queries

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// IsCourierAvailableQueryHandler answers whether a courier currently holds an
// active delivery. The answer is advisory: assignment re-checks inside its own
// transaction and the store's exclusivity index has the last word.
type IsCourierAvailableQueryHandler struct {
	db *gorm.DB
}

// NewIsCourierAvailableQueryHandler creates a handler for availability checks.
func NewIsCourierAvailableQueryHandler(db *gorm.DB) IsCourierAvailableQueryHandler {
	return IsCourierAvailableQueryHandler{db: db}
}

// Handle reports true when the courier has no Assigned or PickedUp delivery.
func (h IsCourierAvailableQueryHandler) Handle(
	ctx context.Context,
	query IsCourierAvailableQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var active int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM deliveries
		WHERE courier_id = ? AND status IN (?, ?)
	`, query.CourierID().Bytes(), int(delivery.Assigned), int(delivery.PickedUp)).
		Scan(&active).Error
	if err != nil {
		return false, err
	}

	return active == 0, nil
}
