package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteOrderItemCommandIsNotConstructed = errors.New(
	"CompleteOrderItemCommand must be created via NewCompleteOrderItemCommand constructor",
)

// CompleteOrderItemCommand marks an active order item as fulfilled.
type CompleteOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderItemID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteOrderItemCommand(orderItemID kernel.ID) (CompleteOrderItemCommand, error) {
	if err := orderItemID.ValidateAs("orderItemId"); err != nil {
		return CompleteOrderItemCommand{}, err
	}

	return CompleteOrderItemCommand{
		orderItemID: orderItemID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderItemCommandIsNotConstructed)
}

func (c CompleteOrderItemCommand) OrderItemID() kernel.ID {
	return c.orderItemID
}
