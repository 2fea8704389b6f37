// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"fulfillment/internal/core/ports"
)

// Read side repository access. Queries never begin a transaction: each
// Reader runs its repositories directly on the connection.
type (
	// CatalogReader reads the status catalog.
	CatalogReader interface {
		StatusRepository() ports.StatusRepository
	}

	// CatalogReaderFactory creates catalog readers.
	CatalogReaderFactory interface {
		Create() CatalogReader
	}

	// WorkflowReader reads everything a workflow projection combines.
	WorkflowReader interface {
		CatalogReader
		OrderItemRepository() ports.OrderItemRepository
		RoleRepository() ports.RoleRepository
		HistoryRepository() ports.HistoryRepository
		ActorNameResolver() ports.ActorNameResolver
	}

	// WorkflowReaderFactory creates workflow readers.
	WorkflowReaderFactory interface {
		Create() WorkflowReader
	}
)
