package queries

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetCourierStatisticsQueryHandler computes a courier's performance summary
// in a single SQL aggregate pass.
type GetCourierStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierStatisticsQueryHandler creates a handler for courier statistics.
func NewGetCourierStatisticsQueryHandler(db *gorm.DB) GetCourierStatisticsQueryHandler {
	return GetCourierStatisticsQueryHandler{db: db}
}

// Handle computes the statistics. A courier with no deliveries gets an
// all-zero response, not an error.
func (h GetCourierStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatisticsQuery,
) (CourierStatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierStatisticsResponse{}, err
	}

	var row struct {
		Total         int64
		Completed     int64
		Active        int64
		Cancelled     int64
		AvgMinutes    float64
		TotalEarnings float64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = @delivered) AS completed,
			COUNT(*) FILTER (WHERE status IN (@assigned, @picked_up)) AS active,
			COUNT(*) FILTER (WHERE status = @cancelled) AS cancelled,
			COALESCE(AVG(
				EXTRACT(EPOCH FROM (delivered_at - picked_up_at)) / 60.0
			) FILTER (WHERE status = @delivered
				AND delivered_at IS NOT NULL
				AND picked_up_at IS NOT NULL), 0) AS avg_minutes,
			COALESCE(SUM(fee) FILTER (WHERE status = @delivered), 0) AS total_earnings
		FROM deliveries
		WHERE courier_id = @courier_id
	`,
		map[string]any{
			"courier_id": query.CourierID().Bytes(),
			"delivered":  int(delivery.Delivered),
			"assigned":   int(delivery.Assigned),
			"picked_up":  int(delivery.PickedUp),
			"cancelled":  int(delivery.Cancelled),
		}).Scan(&row).Error
	if err != nil {
		return CourierStatisticsResponse{}, err
	}

	resp := CourierStatisticsResponse{
		CourierID:                  query.CourierID(),
		TotalDeliveries:            row.Total,
		CompletedDeliveries:        row.Completed,
		ActiveDeliveries:           row.Active,
		CancelledDeliveries:        row.Cancelled,
		AverageDeliveryTimeMinutes: row.AvgMinutes,
		TotalEarnings:              row.TotalEarnings,
	}

	if row.Total > 0 {
		resp.SuccessRate = float64(row.Completed) / float64(row.Total) * 100
	}

	return resp, nil
}
