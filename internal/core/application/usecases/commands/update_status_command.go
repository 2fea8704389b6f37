package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand changes the fields of a catalog node named in the patch.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	statusID kernel.ID
	patch    status.Patch

	guard guard.ConstructorGuard
}

func NewUpdateStatusCommand(statusID kernel.ID, patch status.Patch) (UpdateStatusCommand, error) {
	if err := statusID.ValidateAs("status id"); err != nil {
		return UpdateStatusCommand{}, err
	}
	if patch.DependsOn != nil && !patch.ClearDependsOn {
		if err := patch.DependsOn.ValidateAs("dependsOn"); err != nil {
			return UpdateStatusCommand{}, err
		}
	}

	return UpdateStatusCommand{
		statusID: statusID,
		patch:    patch,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

func (c UpdateStatusCommand) StatusID() kernel.ID {
	return c.statusID
}

func (c UpdateStatusCommand) Patch() status.Patch {
	return c.patch
}
