package history

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewProgressRecord, NewCancellationRecord or RestoreRecord")

// Record is one immutable ledger entry.
type Record struct {
	id            kernel.UUID
	orderItemID   kernel.ID
	statusID      kernel.ID
	actorID       kernel.ID
	kind          Kind
	timestamp     time.Time
	isConstructed bool
}

// NewProgressRecord records that an order item reached statusID.
func NewProgressRecord(orderItemID, statusID, actorID kernel.ID, at time.Time) (*Record, error) {
	if statusID == status.CancelSentinelID {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"statusId",
			fmt.Errorf("%d is reserved for cancellation records", statusID),
		)
	}
	return newRecord(kernel.NewUUID(), orderItemID, statusID, actorID, Progress, at)
}

// NewCancellationRecord records the cancellation of an order item.
func NewCancellationRecord(orderItemID, actorID kernel.ID, at time.Time) (*Record, error) {
	return newRecord(kernel.NewUUID(), orderItemID, status.CancelSentinelID, actorID, Cancellation, at)
}

// RestoreRecord rebuilds a stored record.
func RestoreRecord(
	id kernel.UUID,
	orderItemID, statusID, actorID kernel.ID,
	kind Kind,
	at time.Time,
) (*Record, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if (kind == Cancellation) != (statusID == status.CancelSentinelID) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"statusId",
			fmt.Errorf("%s record cannot carry status %d", kind, statusID),
		)
	}
	return newRecord(id, orderItemID, statusID, actorID, kind, at)
}

func newRecord(
	id kernel.UUID,
	orderItemID, statusID, actorID kernel.ID,
	kind Kind,
	at time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		orderItemID.ValidateAs("orderItemId"),
		statusID.ValidateAs("statusId"),
		actorID.ValidateAs("actorId"),
	); err != nil {
		return nil, err
	}
	if at.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}
	return &Record{
		id:            id,
		orderItemID:   orderItemID,
		statusID:      statusID,
		actorID:       actorID,
		kind:          kind,
		timestamp:     at.UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}, nil
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) ID() kernel.UUID {
	return r.id
}

func (r *Record) OrderItemID() kernel.ID {
	return r.orderItemID
}

func (r *Record) StatusID() kernel.ID {
	return r.statusID
}

func (r *Record) ActorID() kernel.ID {
	return r.actorID
}

func (r *Record) Kind() Kind {
	return r.kind
}

func (r *Record) Timestamp() time.Time {
	return r.timestamp
}

func (r *Record) IsCancellation() bool {
	return r.kind == Cancellation
}
