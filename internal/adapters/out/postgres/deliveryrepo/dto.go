// Package deliveryrepo implements delivery persistence over GORM.
// It handles the mapping between the Delivery aggregate and its relational
// representation, and carries the two indexes the domain relies on: the
// unique order reference and the partial unique index that serializes
// courier exclusivity.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates.
//
// idx_deliveries_active_courier is a partial unique index over courier_id for
// rows in Assigned (2) or PickedUp (3) status. It is the store-level backstop
// of the exclusivity rule: two transactions may both pass the application
// check, but only one of them can commit an active assignment for the same
// courier.
type DeliveryDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_deliveries_order"`
	CourierID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_deliveries_active_courier,where:status IN (2, 3)"`
	Status    int        `gorm:"index"`

	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time

	EstimatedPickupTime   time.Time
	EstimatedDeliveryTime time.Time

	Fee           float64
	DistanceKm    *float64
	DeliveryNotes string
	CourierNotes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return DeliveryDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderID:               aggregate.OrderID().Bytes(),
		CourierID:             courierID,
		Status:                int(aggregate.Status()),
		AssignedAt:            aggregate.AssignedAt(),
		PickedUpAt:            aggregate.PickedUpAt(),
		DeliveredAt:           aggregate.DeliveredAt(),
		EstimatedPickupTime:   aggregate.EstimatedPickupTime(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		Fee:                   aggregate.Fee(),
		DistanceKm:            aggregate.DistanceKm(),
		DeliveryNotes:         aggregate.DeliveryNotes(),
		CourierNotes:          aggregate.CourierNotes(),
	}
}

// toDomain converts a database DTO to a delivery aggregate using
// RestoreDelivery, which re-validates status and courier consistency.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		courierID,
		delivery.Status(dto.Status),
		dto.AssignedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.EstimatedPickupTime,
		dto.EstimatedDeliveryTime,
		dto.Fee,
		dto.DistanceKm,
		dto.DeliveryNotes,
		dto.CourierNotes,
	)
}
