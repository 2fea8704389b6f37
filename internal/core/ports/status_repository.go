// Package ports defines the contracts between the fulfillment core and its
// storage. Implementations live in internal/adapters/out.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
)

// StatusRepository persists the status catalog.
type StatusRepository interface {
	// Add inserts a new status and returns it with its assigned ID.
	Add(ctx context.Context, s *status.Status) (*status.Status, error)

	// Update persists changes to an existing status.
	// Returns errs.ObjectNotFoundError if it does not exist.
	Update(ctx context.Context, s *status.Status) error

	// Get returns the status or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*status.Status, error)

	// GetMany returns the statuses found among ids, keyed by ID.
	// Missing IDs are simply absent from the map.
	GetMany(ctx context.Context, ids []kernel.ID) (map[kernel.ID]*status.Status, error)

	// Exists reports whether a status with id is stored.
	Exists(ctx context.Context, id kernel.ID) (bool, error)

	// Remove deletes the status. Returns errs.ObjectNotFoundError if it does
	// not exist and errs.ConflictError while other statuses depend on it.
	Remove(ctx context.Context, id kernel.ID) error

	// ListBranches returns every root status with its direct children, in
	// store order (ascending ID). The sentinel is excluded.
	ListBranches(ctx context.Context) ([]status.Branch, error)
}
