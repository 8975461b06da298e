package delivery

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery constructor",
)

// Time estimation offsets. These are deliberately simple dispatch heuristics,
// not routed estimates.
const (
	// initialPickupLead is the pickup estimate applied at creation.
	initialPickupLead = 15 * time.Minute

	// initialDeliveryLead is the delivery estimate applied at creation
	// when no distance is known.
	initialDeliveryLead = 45 * time.Minute

	// distanceDeliveryBase and perKilometerLead form the creation-time
	// delivery estimate when a distance is supplied: base + lead × km.
	distanceDeliveryBase = 30 * time.Minute
	perKilometerLead     = 3 * time.Minute

	// assignedPickupLead replaces the pickup estimate once a courier accepts.
	assignedPickupLead = 10 * time.Minute

	// pickedUpDeliveryLead replaces the delivery estimate once the order
	// leaves the restaurant.
	pickedUpDeliveryLead = 20 * time.Minute
)

// Delivery is the aggregate root tracking the transport of exactly one order
// from restaurant to customer. It owns the dispatch state machine and the
// stage timestamps, and records domain events for the order-side effects of
// its transitions.
//
// Invariants:
//   - exactly one Delivery exists per order (enforced by the store)
//   - status moves only along the transition graph (see Status)
//   - fee is set once at creation and is never negative
//   - a courier is present exactly while the status requires one
//   - stage timestamps are set once, by the transition that fires them
type Delivery struct {
	id        kernel.UUID
	orderID   kernel.UUID
	courierID *kernel.UUID
	status    Status

	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	estimatedPickupTime   time.Time
	estimatedDeliveryTime time.Time

	fee           float64
	distanceKm    *float64
	deliveryNotes string
	courierNotes  string

	// loadedStatus is the status the record carried when it was restored from
	// the store. Persistence adapters use it for conditional updates so that
	// concurrent transitions on the same record cannot overwrite each other.
	loadedStatus Status

	events []DomainEvent

	guard guard.ConstructorGuard
}

// NewDelivery creates a Pending delivery for the given order.
//
// The fee is required and must not be negative. distanceKm is optional; when
// present it must be positive and it sharpens the initial delivery estimate
// to now + 30min + 3min×km. Without it the estimate is now + 45min. The
// pickup estimate is always now + 15min at creation.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	fee float64,
	distanceKm *float64,
	deliveryNotes string,
) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		loadedStatus:  Pending,
		deliveryNotes: deliveryNotes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setFee(fee),
		d.setDistanceKm(distanceKm),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d.estimatedPickupTime = now.Add(initialPickupLead)
	d.estimatedDeliveryTime = now.Add(initialDeliveryLead)
	if d.distanceKm != nil {
		d.estimatedDeliveryTime = now.Add(
			distanceDeliveryBase + time.Duration(*d.distanceKm*float64(perKilometerLead)),
		)
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence without re-running
// creation-time estimation. It validates identifier, fee, status, and the
// consistency between status and courier assignment.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	assignedAt, pickedUpAt, deliveredAt *time.Time,
	estimatedPickupTime, estimatedDeliveryTime time.Time,
	fee float64,
	distanceKm *float64,
	deliveryNotes, courierNotes string,
) (*Delivery, error) {
	d := &Delivery{
		assignedAt:            assignedAt,
		pickedUpAt:            pickedUpAt,
		deliveredAt:           deliveredAt,
		estimatedPickupTime:   estimatedPickupTime,
		estimatedDeliveryTime: estimatedDeliveryTime,
		deliveryNotes:         deliveryNotes,
		courierNotes:          courierNotes,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setFee(fee),
		d.setDistanceKm(distanceKm),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		d.courierID = courierID
	}

	d.status = status
	d.loadedStatus = status
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being transported.
// It is immutable after creation.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Courier returns the assigned courier's identifier, or nil when the delivery
// is Pending or was cancelled out of a courier's hands.
func (d *Delivery) Courier() *kernel.UUID {
	return d.courierID
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// LoadedStatus returns the status the record carried when it was loaded from
// the store. Used by persistence adapters for conditional updates.
func (d *Delivery) LoadedStatus() Status {
	return d.loadedStatus
}

// AssignedAt returns the time a courier accepted the delivery, if any.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// PickedUpAt returns the time the order left the restaurant, if any.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns the time the order reached the customer, if any.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// EstimatedPickupTime returns the current pickup estimate.
func (d *Delivery) EstimatedPickupTime() time.Time {
	return d.estimatedPickupTime
}

// EstimatedDeliveryTime returns the current delivery estimate.
func (d *Delivery) EstimatedDeliveryTime() time.Time {
	return d.estimatedDeliveryTime
}

// Fee returns the delivery fee agreed at creation.
func (d *Delivery) Fee() float64 {
	return d.fee
}

// DistanceKm returns the restaurant-to-customer distance, if known.
func (d *Delivery) DistanceKm() *float64 {
	return d.distanceKm
}

// DeliveryNotes returns free-form notes, including the cancellation reason
// after a cancel.
func (d *Delivery) DeliveryNotes() string {
	return d.deliveryNotes
}

// CourierNotes returns notes left by the courier.
func (d *Delivery) CourierNotes() string {
	return d.courierNotes
}

// CanBeAssigned reports whether a courier can accept this delivery.
func (d *Delivery) CanBeAssigned() bool {
	return d.status == Pending
}

// CanBePickedUp reports whether the order is ready to leave the restaurant.
func (d *Delivery) CanBePickedUp() bool {
	return d.status == Assigned && d.courierID != nil
}

// CanBeDelivered reports whether the delivery can complete.
func (d *Delivery) CanBeDelivered() bool {
	return d.status == PickedUp
}

// IsActive reports whether the delivery is not yet terminal.
func (d *Delivery) IsActive() bool {
	return d.status.IsActive()
}

// Events returns the domain events recorded since the aggregate was loaded.
func (d *Delivery) Events() []DomainEvent {
	return d.events
}

// ClearEvents discards recorded events once they have been applied.
func (d *Delivery) ClearEvents() {
	d.events = nil
}

// Assign binds the delivery to a courier.
//
// The courier must be present and carry the courier role; the delivery must
// be Pending. On success the status becomes Assigned, assignedAt is stamped,
// and the pickup estimate is reset to now + 10min.
func (d *Delivery) Assign(courier *user.User) error {
	if courier == nil {
		return errs.NewValueIsRequiredError("courier")
	}
	if err := courier.Validate(); err != nil {
		return err
	}
	if !courier.IsCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("user %s does not have the courier role", courier.ID()),
		)
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	courierID := courier.ID()

	d.status = newStatus
	d.courierID = &courierID
	d.assignedAt = &now
	d.estimatedPickupTime = now.Add(assignedPickupLead)
	return nil
}

// Pickup marks the order as collected by the assigned courier.
//
// The delivery must be Assigned with a courier present. On success the status
// becomes PickedUp, pickedUpAt is stamped, the delivery estimate is reset to
// now + 20min, and a PickedUpEvent is recorded so the orchestrating operation
// moves the order to "out for delivery" in the same transaction.
func (d *Delivery) Pickup() error {
	if d.courierID == nil {
		return errs.NewInvalidStateError("delivery has no assigned courier")
	}

	newStatus, err := d.status.Pickup()
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	d.status = newStatus
	d.pickedUpAt = &now
	d.estimatedDeliveryTime = now.Add(pickedUpDeliveryLead)
	d.events = append(d.events, PickedUpEvent{
		DeliveryID: d.id,
		OrderID:    d.orderID,
		OccurredAt: now,
	})
	return nil
}

// Deliver completes the delivery.
//
// The delivery must be PickedUp. On success the status becomes Delivered,
// deliveredAt is stamped, and a DeliveredEvent is recorded so the order is
// marked delivered with the same timestamp in the same transaction.
func (d *Delivery) Deliver() error {
	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	d.status = newStatus
	d.deliveredAt = &now
	d.events = append(d.events, DeliveredEvent{
		DeliveryID:  d.id,
		OrderID:     d.orderID,
		DeliveredAt: now,
	})
	return nil
}

// Cancel abandons the delivery and records the reason in the delivery notes.
//
// Terminal deliveries cannot be cancelled. When the cancellation happens from
// Assigned or PickedUp the courier's in-flight work is explicitly un-assigned:
// courier and assignedAt are cleared. A cancellation from Pending leaves both
// untouched (they were never set).
func (d *Delivery) Cancel(reason string) error {
	wasPending := d.status == Pending

	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.deliveryNotes = reason
	if !wasPending {
		d.courierID = nil
		d.assignedAt = nil
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"fee is invalid",
			fmt.Errorf("%v is negative", fee),
		)
	}
	d.fee = fee
	return nil
}

func (d *Delivery) setDistanceKm(distanceKm *float64) error {
	if distanceKm == nil {
		return nil
	}
	if *distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceKm is invalid",
			fmt.Errorf("%v is not greater than 0", *distanceKm),
		)
	}
	d.distanceKm = distanceKm
	return nil
}
