package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// RecordProgressCommandHandler appends progress records to the history ledger.
type RecordProgressCommandHandler struct {
	uowFactory OrderItemUoWFactory
	now        func() time.Time
}

func NewRecordProgressCommandHandler(uowFactory OrderItemUoWFactory, now func() time.Time) RecordProgressCommandHandler {
	if now == nil {
		now = time.Now
	}
	return RecordProgressCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle returns the appended record. The status must exist, the item must
// exist and be Active, and the status must be a step of its workflow.
func (h *RecordProgressCommandHandler) Handle(ctx context.Context, cmd RecordProgressCommand) (*history.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.StatusRepository().Exists(ctx, cmd.StatusID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("status id not found", cmd.StatusID())
	}

	item, err := uow.OrderItemRepository().GetForUpdate(ctx, cmd.OrderItemID())
	if err != nil {
		return nil, err
	}

	if err = item.CheckProgress(cmd.StatusID()); err != nil {
		return nil, err
	}

	ledger := services.NewHistoryLedger(uow.HistoryRepository(), h.now)
	record, err := ledger.Append(ctx, item.ID(), cmd.StatusID(), cmd.ActorID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
