package commands

import (
	"context"
)

// CompleteOrderItemCommandHandler moves order items from Active to Completed.
type CompleteOrderItemCommandHandler struct {
	uowFactory OrderItemUoWFactory
}

func NewCompleteOrderItemCommandHandler(uowFactory OrderItemUoWFactory) CompleteOrderItemCommandHandler {
	return CompleteOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.InvalidTransitionError unless the item is Active.
func (h *CompleteOrderItemCommandHandler) Handle(ctx context.Context, cmd CompleteOrderItemCommand) error {
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

	itemRepo := uow.OrderItemRepository()
	item, err := itemRepo.GetForUpdate(ctx, cmd.OrderItemID())
	if err != nil {
		return err
	}

	if err = item.Complete(); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
