package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordProgressCommandIsNotConstructed = errors.New(
	"RecordProgressCommand must be created via NewRecordProgressCommand constructor",
)

// RecordProgressCommand records that an order item reached a step of its
// workflow. Cancellation is not progress: use CancelOrderItemCommand.
type RecordProgressCommand struct { //nolint:recvcheck //using for validation
	orderItemID kernel.ID
	statusID    kernel.ID
	actorID     kernel.ID

	guard guard.ConstructorGuard
}

func NewRecordProgressCommand(orderItemID, statusID, actorID kernel.ID) (RecordProgressCommand, error) {
	if err := errors.Join(
		orderItemID.ValidateAs("orderItemId"),
		statusID.ValidateAs("statusId"),
		actorID.ValidateAs("actorId"),
	); err != nil {
		return RecordProgressCommand{}, err
	}
	if statusID == status.CancelSentinelID {
		return RecordProgressCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"statusId",
			fmt.Errorf("%d is reserved for cancellation", status.CancelSentinelID),
		)
	}

	return RecordProgressCommand{
		orderItemID: orderItemID,
		statusID:    statusID,
		actorID:     actorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RecordProgressCommand) Validate() error {
	return c.guard.Validate(ErrRecordProgressCommandIsNotConstructed)
}

func (c RecordProgressCommand) OrderItemID() kernel.ID {
	return c.orderItemID
}

func (c RecordProgressCommand) StatusID() kernel.ID {
	return c.statusID
}

func (c RecordProgressCommand) ActorID() kernel.ID {
	return c.actorID
}
