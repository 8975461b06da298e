package commands

import (
	"context"
	"time"
)

// PurgeCancelledCommandHandler removes expired Cancelled delivery records in
// bulk. Driven by the scheduled purge job.
type PurgeCancelledCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewPurgeCancelledCommandHandler creates a handler for the scheduled purge.
func NewPurgeCancelledCommandHandler(uowFactory DeliveryUoWFactory) PurgeCancelledCommandHandler {
	return PurgeCancelledCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes Cancelled deliveries last touched before now minus the
// retention window, and returns the number of records removed.
func (h PurgeCancelledCommandHandler) Handle(
	ctx context.Context,
	command PurgeCancelledCommand,
) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-command.Retention())

	purged, err := uow.DeliveryRepository().PurgeCancelledBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
