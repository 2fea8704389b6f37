package commands

import (
	"context"
)

// AssignOrderItemCommandHandler stores order item assignments.
type AssignOrderItemCommandHandler struct {
	uowFactory OrderItemUoWFactory
}

func NewAssignOrderItemCommandHandler(uowFactory OrderItemUoWFactory) AssignOrderItemCommandHandler {
	return AssignOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AssignOrderItemCommandHandler) Handle(ctx context.Context, cmd AssignOrderItemCommand) error {
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
	item, err := itemRepo.Get(ctx, cmd.OrderItemID())
	if err != nil {
		return err
	}

	if err = item.AssignTo(cmd.AssigneeID(), cmd.ExpectedBy()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
