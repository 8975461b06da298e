package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierStatisticsQueryIsNotConstructed = errors.New(
	"GetCourierStatisticsQuery must be created via NewGetCourierStatisticsQuery constructor",
)

// GetCourierStatisticsQuery aggregates a courier's delivery performance.
type GetCourierStatisticsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierStatisticsQuery creates a statistics query for a courier.
func NewGetCourierStatisticsQuery(courierID kernel.UUID) (GetCourierStatisticsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierStatisticsQuery{}, err
	}

	return GetCourierStatisticsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatisticsQueryIsNotConstructed)
}

// CourierID returns the courier whose statistics are requested.
func (q GetCourierStatisticsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// CourierStatisticsResponse summarizes a courier's delivery record.
//
// Counts cover every delivery that still references the courier. Averages and
// earnings cover completed deliveries only: AverageDeliveryTimeMinutes is the
// mean pickup-to-delivery span over Delivered rows carrying both timestamps,
// TotalEarnings sums the fees of Delivered rows, and SuccessRate is the share
// of Delivered rows among all counted ones, as a percentage. All of them are
// zero for a courier with no history.
type CourierStatisticsResponse struct {
	CourierID                  kernel.UUID
	TotalDeliveries            int64
	CompletedDeliveries        int64
	ActiveDeliveries           int64
	CancelledDeliveries        int64
	AverageDeliveryTimeMinutes float64
	TotalEarnings              float64
	SuccessRate                float64
}
