package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// CancelOrderItemCommandHandler cancels order items.
//
// The whole cancellation runs in one transaction: the status check, the
// locked item load, the lifecycle change and the cancellation record
// either all take effect or none do. A cancelled item therefore always has
// exactly one cancellation record.
type CancelOrderItemCommandHandler struct {
	uowFactory OrderItemUoWFactory
	now        func() time.Time
}

// NewCancelOrderItemCommandHandler creates the handler. A nil now defaults
// to time.Now.
func NewCancelOrderItemCommandHandler(uowFactory OrderItemUoWFactory, now func() time.Time) CancelOrderItemCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CancelOrderItemCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle cancels the item. It fails with errs.ObjectNotFoundError when the
// status or the item is missing, errs.InvalidTransitionError for a
// completed item and errs.ConflictError for an item already cancelled.
func (h *CancelOrderItemCommandHandler) Handle(ctx context.Context, cmd CancelOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.StatusRepository().Exists(ctx, cmd.StatusID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("status id not found", cmd.StatusID())
	}

	itemRepo := uow.OrderItemRepository()
	item, err := itemRepo.GetForUpdate(ctx, cmd.OrderItemID())
	if err != nil {
		return err
	}

	if err = item.Cancel(); err != nil {
		return err
	}

	ledger := services.NewHistoryLedger(uow.HistoryRepository(), h.now)
	if _, err = ledger.Append(ctx, item.ID(), status.CancelSentinelID, cmd.ActorID()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
