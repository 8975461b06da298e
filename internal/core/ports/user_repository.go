package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
)

// UserRepository is the dispatch subsystem's read-only lookup into the user
// store, used to resolve couriers and check their role.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
