package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions so every delivery
// follows the dispatch workflow in order.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a delivery awaiting courier assignment.
	Pending

	// Assigned indicates a courier has accepted the delivery but has not yet
	// collected the order from the restaurant.
	Assigned

	// PickedUp indicates the courier has collected the order and is en route
	// to the customer.
	PickedUp

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the delivery was abandoned before completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses a status name as it appears in API requests and
// persistence. Matching is exact against the canonical upper-case names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks that the Status is one of the five defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the canonical upper-case name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the delivery still occupies a courier slot or is
// awaiting one: Pending, Assigned, or PickedUp.
func (s Status) IsActive() bool {
	return s == Pending || s == Assigned || s == PickedUp
}

// ValidateCanHaveCourier validates the consistency between delivery status and
// courier assignment when restoring records from persistence.
//
// Rules:
//   - Pending deliveries must not have a courier
//   - Assigned, PickedUp, and Delivered deliveries must have a courier
//   - Cancelled deliveries may or may not retain one (a cancellation from
//     Pending never had a courier; cancellation from later states clears it)
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Assigned || s == PickedUp || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Returns (0, error) with an invalid-state error from any other status;
// a delivery is assigned exactly once, reassignment requires cancellation.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"delivery cannot be assigned",
			fmt.Errorf("%s is not a valid status to assign from", s.String()),
		)
	}

	return Assigned, nil
}

// Pickup transitions the status to PickedUp.
//
// Valid transitions:
//   - Assigned -> PickedUp
func (s Status) Pickup() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidStateErrorWithCause(
			"delivery cannot be picked up",
			fmt.Errorf("%s is not a valid status to pick up from", s.String()),
		)
	}

	return PickedUp, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - PickedUp -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewInvalidStateErrorWithCause(
			"delivery cannot be completed",
			fmt.Errorf("%s is not a valid status to deliver from", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
//   - PickedUp -> Cancelled
//
// Terminal states cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, errs.NewInvalidStateErrorWithCause(
			"delivery cannot be cancelled",
			fmt.Errorf("%s is not a valid status to cancel from", s.String()),
		)
	}

	return Cancelled, nil
}
