package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// syncOrderWithDeliveryEvents drains the domain events recorded by a delivery
// transition and applies the order-side effect of each one through the given
// repository. It must run inside the same transaction as the delivery write,
// so a delivery never advances while its order stays behind.
func syncOrderWithDeliveryEvents(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	d *delivery.Delivery,
) error {
	for _, event := range d.Events() {
		trackedOrder, err := orderRepo.Get(ctx, d.OrderID())
		if err != nil {
			return err
		}

		switch e := event.(type) {
		case delivery.PickedUpEvent:
			if err = trackedOrder.MarkOutForDelivery(); err != nil {
				return err
			}
		case delivery.DeliveredEvent:
			if err = trackedOrder.MarkDelivered(e.DeliveredAt); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unhandled delivery event %q", event.EventName())
		}

		if err = orderRepo.Update(ctx, trackedOrder); err != nil {
			return err
		}
	}

	d.ClearEvents()
	return nil
}
