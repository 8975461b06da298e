// Package queries implements the read side of the CQRS split. Query handlers
// run raw SQL over the gorm connection and return flat read models, bypassing
// the aggregates and the unit of work entirely.
package queries

import (
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryResponse is the read model for a single delivery record.
// Carries everything the HTTP layer exposes, already converted to domain
// value types.
type DeliveryResponse struct {
	ID                    kernel.UUID
	OrderID               kernel.UUID
	CourierID             *kernel.UUID
	Status                delivery.Status
	AssignedAt            *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	EstimatedPickupTime   time.Time
	EstimatedDeliveryTime time.Time
	Fee                   float64
	DistanceKm            *float64
	DeliveryNotes         string
	CourierNotes          string
}

// deliveryColumns is the column list every delivery read query selects,
// in the order scanDeliveryRow consumes them.
const deliveryColumns = `
	id,
	order_id,
	courier_id,
	status,
	assigned_at,
	picked_up_at,
	delivered_at,
	estimated_pickup_time,
	estimated_delivery_time,
	fee,
	distance_km,
	delivery_notes,
	courier_notes
`

// scanDeliveryRow reads one row of deliveryColumns into a response.
func scanDeliveryRow(rows *sql.Rows) (DeliveryResponse, error) {
	var resp DeliveryResponse
	var id, orderID uuid.UUID
	var courierID *uuid.UUID
	var status int
	var assignedAt, pickedUpAt, deliveredAt sql.NullTime

	err := rows.Scan(
		&id,
		&orderID,
		&courierID,
		&status,
		&assignedAt,
		&pickedUpAt,
		&deliveredAt,
		&resp.EstimatedPickupTime,
		&resp.EstimatedDeliveryTime,
		&resp.Fee,
		&resp.DistanceKm,
		&resp.DeliveryNotes,
		&resp.CourierNotes,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DeliveryResponse{}, err
	}
	resp.ID = deliveryID

	ownerID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return DeliveryResponse{}, err
	}
	resp.OrderID = ownerID

	if courierID != nil {
		cID, idErr := kernel.UUIDFromBytes((*courierID)[:])
		if idErr != nil {
			return DeliveryResponse{}, idErr
		}
		resp.CourierID = &cID
	}

	resp.Status = delivery.Status(status)
	if assignedAt.Valid {
		resp.AssignedAt = &assignedAt.Time
	}
	if pickedUpAt.Valid {
		resp.PickedUpAt = &pickedUpAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}

	return resp, nil
}

// collectDeliveryRows drains a deliveryColumns result set.
func collectDeliveryRows(rows *sql.Rows) ([]DeliveryResponse, error) {
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)
	for rows.Next() {
		resp, err := scanDeliveryRow(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
