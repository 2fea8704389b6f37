package services

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// HistoryLedger appends and lists the audit trail of order items.
//
// Construct one per unit of work from the transaction-bound repository so
// the duplicate check and the insert run in the same transaction. The
// store's uniqueness constraint on cancellation records closes the race
// between concurrent transactions.
type HistoryLedger struct {
	repo ports.HistoryRepository
	now  func() time.Time
}

// NewHistoryLedger creates a ledger over repo. A nil now defaults to time.Now.
func NewHistoryLedger(repo ports.HistoryRepository, now func() time.Time) HistoryLedger {
	if now == nil {
		now = time.Now
	}
	return HistoryLedger{repo: repo, now: now}
}

// Append records statusID for the order item at the current time. Passing
// status.CancelSentinelID appends a cancellation record and fails with
// errs.ConflictError if one already exists, writing nothing.
func (l HistoryLedger) Append(
	ctx context.Context,
	orderItemID, statusID, actorID kernel.ID,
) (*history.Record, error) {
	var (
		record *history.Record
		err    error
	)
	if statusID == status.CancelSentinelID {
		record, err = l.newCancellation(ctx, orderItemID, actorID)
	} else {
		record, err = history.NewProgressRecord(orderItemID, statusID, actorID, l.now())
	}
	if err != nil {
		return nil, err
	}
	if err = l.repo.Append(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (l HistoryLedger) newCancellation(ctx context.Context, orderItemID, actorID kernel.ID) (*history.Record, error) {
	cancelled, err := l.repo.HasCancellation(ctx, orderItemID)
	if err != nil {
		return nil, err
	}
	if cancelled {
		return nil, errs.NewConflictError(fmt.Sprintf("order item %d", orderItemID), "is already cancelled")
	}
	return history.NewCancellationRecord(orderItemID, actorID, l.now())
}

// ListFor returns the records of an order item ascending by timestamp.
func (l HistoryLedger) ListFor(ctx context.Context, orderItemID kernel.ID) ([]*history.Record, error) {
	records, err := l.repo.ListFor(ctx, orderItemID)
	if err != nil {
		return nil, err
	}
	history.SortByTimestamp(records)
	return records, nil
}

// HasSentinel reports whether the order item has a cancellation record.
func (l HistoryLedger) HasSentinel(ctx context.Context, orderItemID kernel.ID) (bool, error) {
	return l.repo.HasCancellation(ctx, orderItemID)
}
