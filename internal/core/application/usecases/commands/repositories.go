// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// StatusRepoFactory provides access to the status catalog within a transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// OrderItemRepoFactory provides access to order items within a transaction.
	OrderItemRepoFactory interface {
		OrderItemRepository() ports.OrderItemRepository
	}

	// HistoryRepoFactory provides access to the history ledger store within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// StatusUoW manages transactions for catalog-only operations.
	StatusUoW interface {
		TxManager
		StatusRepoFactory
	}

	// StatusUoWFactory creates new status unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// OrderItemUoW manages transactions for lifecycle transitions. A
	// transition validates against the catalog, mutates the order item and
	// records history in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   item, err := uow.OrderItemRepository().GetForUpdate(ctx, id)
	//   // ... transition and record history
	//
	//   err = uow.Commit(ctx)
	OrderItemUoW interface {
		TxManager
		StatusRepoFactory
		OrderItemRepoFactory
		HistoryRepoFactory
	}

	// OrderItemUoWFactory creates new order item unit of work instances.
	OrderItemUoWFactory interface {
		Create() OrderItemUoW
	}
)
