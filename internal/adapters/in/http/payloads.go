package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
)

// ErrorPayload is the JSON body of every non-2xx response.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DeliveryPayload is the JSON representation of a delivery record.
type DeliveryPayload struct {
	ID                    string     `json:"id"`
	OrderID               string     `json:"orderId"`
	CourierID             *string    `json:"courierId,omitempty"`
	Status                string     `json:"status"`
	AssignedAt            *time.Time `json:"assignedAt,omitempty"`
	PickedUpAt            *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt           *time.Time `json:"deliveredAt,omitempty"`
	EstimatedPickupTime   time.Time  `json:"estimatedPickupTime"`
	EstimatedDeliveryTime time.Time  `json:"estimatedDeliveryTime"`
	Fee                   float64    `json:"fee"`
	DistanceKm            *float64   `json:"distanceKm,omitempty"`
	DeliveryNotes         string     `json:"deliveryNotes,omitempty"`
	CourierNotes          string     `json:"courierNotes,omitempty"`
}

// CourierAvailabilityPayload answers the availability check.
type CourierAvailabilityPayload struct {
	CourierID string `json:"courierId"`
	Available bool   `json:"available"`
}

// CourierStatisticsPayload summarizes a courier's delivery record.
type CourierStatisticsPayload struct {
	CourierID                  string  `json:"courierId"`
	TotalDeliveries            int64   `json:"totalDeliveries"`
	CompletedDeliveries        int64   `json:"completedDeliveries"`
	ActiveDeliveries           int64   `json:"activeDeliveries"`
	CancelledDeliveries        int64   `json:"cancelledDeliveries"`
	AverageDeliveryTimeMinutes float64 `json:"averageDeliveryTimeMinutes"`
	TotalEarnings              float64 `json:"totalEarnings"`
	SuccessRate                float64 `json:"successRate"`
}

// CreateDeliveryRequest is the body of POST /deliveries.
type CreateDeliveryRequest struct {
	OrderID       string   `json:"orderId"`
	EstimatedFee  float64  `json:"estimatedFee"`
	DistanceKm    *float64 `json:"distanceKm,omitempty"`
	DeliveryNotes string   `json:"deliveryNotes,omitempty"`
}

// CourierRequest is the body of the assign, pickup, and deliver calls.
type CourierRequest struct {
	CourierID string `json:"courierId"`
}

// CancelRequest is the body of the cancel call.
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// StatusRequest is the body of the administrative status override.
type StatusRequest struct {
	Status string `json:"status"`
}

// deliveryPayloadFromAggregate maps a write-side aggregate to its JSON shape.
func deliveryPayloadFromAggregate(d *delivery.Delivery) DeliveryPayload {
	payload := DeliveryPayload{
		ID:                    d.ID().String(),
		OrderID:               d.OrderID().String(),
		Status:                d.Status().String(),
		AssignedAt:            d.AssignedAt(),
		PickedUpAt:            d.PickedUpAt(),
		DeliveredAt:           d.DeliveredAt(),
		EstimatedPickupTime:   d.EstimatedPickupTime(),
		EstimatedDeliveryTime: d.EstimatedDeliveryTime(),
		Fee:                   d.Fee(),
		DistanceKm:            d.DistanceKm(),
		DeliveryNotes:         d.DeliveryNotes(),
		CourierNotes:          d.CourierNotes(),
	}

	if courier := d.Courier(); courier != nil {
		id := courier.String()
		payload.CourierID = &id
	}

	return payload
}

// deliveryPayloadFromReadModel maps a read model to the same JSON shape.
func deliveryPayloadFromReadModel(resp queries.DeliveryResponse) DeliveryPayload {
	payload := DeliveryPayload{
		ID:                    resp.ID.String(),
		OrderID:               resp.OrderID.String(),
		Status:                resp.Status.String(),
		AssignedAt:            resp.AssignedAt,
		PickedUpAt:            resp.PickedUpAt,
		DeliveredAt:           resp.DeliveredAt,
		EstimatedPickupTime:   resp.EstimatedPickupTime,
		EstimatedDeliveryTime: resp.EstimatedDeliveryTime,
		Fee:                   resp.Fee,
		DistanceKm:            resp.DistanceKm,
		DeliveryNotes:         resp.DeliveryNotes,
		CourierNotes:          resp.CourierNotes,
	}

	if resp.CourierID != nil {
		id := resp.CourierID.String()
		payload.CourierID = &id
	}

	return payload
}

func deliveryPayloadsFromReadModels(resps []queries.DeliveryResponse) []DeliveryPayload {
	payloads := make([]DeliveryPayload, len(resps))
	for i, resp := range resps {
		payloads[i] = deliveryPayloadFromReadModel(resp)
	}
	return payloads
}
