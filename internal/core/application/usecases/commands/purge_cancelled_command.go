package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrPurgeCancelledCommandIsNotConstructed = errors.New(
	"PurgeCancelledCommand must be created via NewPurgeCancelledCommand constructor",
)

// PurgeCancelledCommand represents the scheduled administrative purge of
// Cancelled delivery records older than a retention window. Delivered
// records are never purged.
type PurgeCancelledCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeCancelledCommand creates a purge command with the given retention.
// The retention must be positive, so a misconfigured schedule can never wipe
// fresh cancellations.
func NewPurgeCancelledCommand(retention time.Duration) (PurgeCancelledCommand, error) {
	if retention <= 0 {
		return PurgeCancelledCommand{}, errs.NewValueIsInvalidError(
			"retention must be greater than 0",
		)
	}

	return PurgeCancelledCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeCancelledCommand) Validate() error {
	return c.guard.Validate(ErrPurgeCancelledCommandIsNotConstructed)
}

// Retention returns how long cancelled records are kept before purging.
func (c PurgeCancelledCommand) Retention() time.Duration {
	return c.retention
}
