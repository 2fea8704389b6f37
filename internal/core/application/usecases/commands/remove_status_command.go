package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveStatusCommandIsNotConstructed = errors.New(
	"RemoveStatusCommand must be created via NewRemoveStatusCommand constructor",
)

// RemoveStatusCommand deletes a catalog node. The cancellation sentinel
// cannot be removed.
type RemoveStatusCommand struct { //nolint:recvcheck //using for validation
	statusID kernel.ID

	guard guard.ConstructorGuard
}

func NewRemoveStatusCommand(statusID kernel.ID) (RemoveStatusCommand, error) {
	if err := statusID.ValidateAs("status id"); err != nil {
		return RemoveStatusCommand{}, err
	}
	if statusID == status.CancelSentinelID {
		return RemoveStatusCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"status id",
			fmt.Errorf("%d is reserved for cancellation", status.CancelSentinelID),
		)
	}

	return RemoveStatusCommand{
		statusID: statusID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveStatusCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStatusCommandIsNotConstructed)
}

func (c RemoveStatusCommand) StatusID() kernel.ID {
	return c.statusID
}
