package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the fulfilment state of an order as seen by dispatch.
//
// State transitions driven by the delivery lifecycle:
//
//	Confirmed ──> OutForDelivery ──> Delivered
//
// Delivered is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Confirmed means the order is paid and ready for dispatch.
	Confirmed

	// OutForDelivery means a courier has collected the order.
	OutForDelivery

	// Delivered means the order reached the customer. Final.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Confirmed:      "CONFIRMED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// Validate checks that the Status is one of the defined fulfilment states.
func (s Status) Validate() error {
	if s != Confirmed && s != OutForDelivery && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the canonical upper-case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// OutForDelivery transitions the status when the courier collects the order.
//
// Valid transitions:
//   - Confirmed -> OutForDelivery
func (s Status) OutForDelivery() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot go out for delivery",
			fmt.Errorf("%s is not a valid status to dispatch from", s.String()),
		)
	}

	return OutForDelivery, nil
}

// Deliver transitions the status when the order reaches the customer.
//
// Valid transitions:
//   - OutForDelivery -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be delivered",
			fmt.Errorf("%s is not a valid status to deliver from", s.String()),
		)
	}

	return Delivered, nil
}
