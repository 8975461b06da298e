// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler only names the repositories it actually touches, so tests can
// mock the narrowest surface.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations
	// (cancel, delete, purge).
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates delivery-only unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// DeliveryOrderUoW manages transactions spanning the delivery and order
	// aggregates (creation, pickup, completion, administrative overrides).
	DeliveryOrderUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
	}

	// DeliveryOrderUoWFactory creates delivery+order unit of work instances.
	DeliveryOrderUoWFactory interface {
		Create() DeliveryOrderUoW
	}

	// DeliveryUserUoW manages transactions needing courier lookups alongside
	// the delivery aggregate (assignment).
	DeliveryUserUoW interface {
		TxManager
		DeliveryRepoFactory
		UserRepoFactory
	}

	// DeliveryUserUoWFactory creates delivery+user unit of work instances.
	DeliveryUserUoWFactory interface {
		Create() DeliveryUserUoW
	}
)
