package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignOrderItemCommandIsNotConstructed = errors.New(
	"AssignOrderItemCommand must be created via NewAssignOrderItemCommand constructor",
)

// AssignOrderItemCommand hands an order item to a user, optionally with
// the date the work is expected by.
type AssignOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderItemID kernel.ID
	assigneeID  kernel.ID
	expectedBy  *time.Time

	guard guard.ConstructorGuard
}

func NewAssignOrderItemCommand(orderItemID, assigneeID kernel.ID, expectedBy *time.Time) (AssignOrderItemCommand, error) {
	if err := errors.Join(
		orderItemID.ValidateAs("orderItemId"),
		assigneeID.ValidateAs("assigneeId"),
	); err != nil {
		return AssignOrderItemCommand{}, err
	}

	cmd := AssignOrderItemCommand{
		orderItemID: orderItemID,
		assigneeID:  assigneeID,
		guard:       guard.NewConstructorGuard(),
	}
	if expectedBy != nil {
		at := *expectedBy
		cmd.expectedBy = &at
	}
	return cmd, nil
}

func (c AssignOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderItemCommandIsNotConstructed)
}

func (c AssignOrderItemCommand) OrderItemID() kernel.ID {
	return c.orderItemID
}

func (c AssignOrderItemCommand) AssigneeID() kernel.ID {
	return c.assigneeID
}

func (c AssignOrderItemCommand) ExpectedBy() *time.Time {
	return c.expectedBy
}
