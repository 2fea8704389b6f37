package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
)

// HistoryRepository is the append-only store behind the history ledger.
type HistoryRepository interface {
	// Append inserts the record. A second cancellation record for the same
	// order item is rejected with errs.ConflictError by the store itself.
	Append(ctx context.Context, record *history.Record) error

	// ListFor returns the records of an order item ascending by timestamp.
	ListFor(ctx context.Context, orderItemID kernel.ID) ([]*history.Record, error)

	// HasCancellation reports whether a cancellation record exists.
	HasCancellation(ctx context.Context, orderItemID kernel.ID) (bool, error)
}
