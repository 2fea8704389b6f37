package commands

import (
	"context"
)

// RemoveStatusCommandHandler deletes catalog nodes that nothing depends on.
type RemoveStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewRemoveStatusCommandHandler(uowFactory StatusUoWFactory) RemoveStatusCommandHandler {
	return RemoveStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ObjectNotFoundError for a missing status and with
// errs.ConflictError while other statuses depend on it.
func (h *RemoveStatusCommandHandler) Handle(ctx context.Context, cmd RemoveStatusCommand) error {
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

	if err := uow.StatusRepository().Remove(ctx, cmd.StatusID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
