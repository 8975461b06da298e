package deliveryrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code raised when an insert or update
// collides with a unique index.
const uniqueViolation = "23505"

// GormDeliveryRepository implements DeliveryRepository using GORM.
//
// Writes are conditional on the status the aggregate was loaded with, so two
// transactions racing on the same record cannot both apply a transition: the
// second one sees zero affected rows and fails with an invalid-state error.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery. A unique-index collision on order_id or on the
// active-courier index surfaces as an invalid-state error, matching what the
// application-level checks would have reported.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapUniqueViolation(err, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists a transitioned delivery. The UPDATE is keyed on both the ID
// and the status captured at load time; zero affected rows means another
// transaction moved the record first.
//
// Select("*") forces GORM to write zero-valued and nil columns too, which
// matters here: cancelling an assigned delivery clears courier_id and
// assigned_at, and a struct-based Updates would silently skip both.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.LoadedStatus())).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return mapUniqueViolation(result.Error, aggregate)
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError(
			fmt.Sprintf("delivery %s was modified concurrently", aggregate.ID()),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the single delivery tracking the given order.
func (r *GormDeliveryRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCourier retrieves the courier's deliveries, most recently assigned first.
func (r *GormDeliveryRepository) GetByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*delivery.Delivery, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID.Bytes()).
		Order("assigned_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByStatus retrieves all deliveries currently in the given status.
func (r *GormDeliveryRepository) GetByStatus(
	ctx context.Context,
	status delivery.Status,
) ([]*delivery.Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetActive retrieves all deliveries in a non-terminal status.
func (r *GormDeliveryRepository) GetActive(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status IN ?", []int{
			int(delivery.Pending), int(delivery.Assigned), int(delivery.PickedUp),
		}).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByCourierAndStatuses retrieves the courier's deliveries in any of the
// given statuses.
func (r *GormDeliveryRepository) GetByCourierAndStatuses(
	ctx context.Context,
	courierID kernel.UUID,
	statuses []delivery.Status,
) ([]*delivery.Delivery, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	values := make([]int, 0, len(statuses))
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		values = append(values, int(s))
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND status IN ?", courierID.Bytes(), values).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByAssignedDateRange retrieves deliveries assigned within [from, to].
func (r *GormDeliveryRepository) GetByAssignedDateRange(
	ctx context.Context,
	from, to time.Time,
) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("assigned_at BETWEEN ? AND ?", from, to).
		Order("assigned_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ExistsByOrderID reports whether a delivery already tracks the order.
func (r *GormDeliveryRepository) ExistsByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountActiveByCourier counts the courier's deliveries in Assigned or
// PickedUp status.
func (r *GormDeliveryRepository) CountActiveByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) (int64, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("courier_id = ? AND status IN ?", courierID.Bytes(), []int{
			int(delivery.Assigned), int(delivery.PickedUp),
		}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Delete removes a delivery record by ID.
func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}

	return nil
}

// PurgeCancelledBefore removes all Cancelled deliveries whose last update is
// older than the cutoff and returns the number of rows removed.
func (r *GormDeliveryRepository) PurgeCancelledBefore(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", int(delivery.Cancelled), cutoff).
		Delete(&DeliveryDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func toDomainSlice(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

// mapUniqueViolation translates postgres unique-index collisions into the
// invalid-state errors the application reports for the same conflicts.
func mapUniqueViolation(err error, aggregate *delivery.Delivery) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return err
	}

	if pqErr.Constraint == "idx_deliveries_order" {
		return errs.NewInvalidStateErrorWithCause(
			fmt.Sprintf("delivery already exists for order %s", aggregate.OrderID()),
			err,
		)
	}

	return errs.NewInvalidStateErrorWithCause("courier already has an active delivery", err)
}
