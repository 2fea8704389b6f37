package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// UpdateStatusCommandHandler edits catalog nodes.
type UpdateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewUpdateStatusCommandHandler(uowFactory StatusUoWFactory) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the patch and returns the updated status.
// It fails with errs.ObjectNotFoundError when the status or the new parent
// is missing, and with errs.ValueIsInvalidError when the new parent would
// close a cycle or the target is the cancellation sentinel.
func (h *UpdateStatusCommandHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*status.Status, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.StatusID() == status.CancelSentinelID {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status id",
			fmt.Errorf("%d is reserved for cancellation", status.CancelSentinelID),
		)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()
	s, err := statusRepo.Get(ctx, cmd.StatusID())
	if err != nil {
		return nil, err
	}

	if err = s.Apply(cmd.Patch()); err != nil {
		return nil, err
	}

	if parent := s.DependsOn(); parent != nil && cmd.Patch().ChangesParent() {
		if err = services.NewDependencyGuard(statusRepo).CheckParent(ctx, s.ID(), *parent); err != nil {
			return nil, err
		}
	}

	if err = statusRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
