package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/domain/services"
)

// CreateStatusCommandHandler adds statuses to the catalog.
type CreateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewCreateStatusCommandHandler(uowFactory StatusUoWFactory) CreateStatusCommandHandler {
	return CreateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the new status and returns it with its assigned ID.
// A missing parent fails with errs.ObjectNotFoundError.
func (h *CreateStatusCommandHandler) Handle(ctx context.Context, cmd CreateStatusCommand) (*status.Status, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := status.NewStatus(cmd.Label(), cmd.Description(), cmd.VisibleToCustomer(), cmd.DependsOn())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()
	if parent := cmd.DependsOn(); parent != nil {
		if err = services.NewDependencyGuard(statusRepo).CheckParent(ctx, 0, *parent); err != nil {
			return nil, err
		}
	}

	created, err := statusRepo.Add(ctx, s)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
