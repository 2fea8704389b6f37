package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelOrderItemCommandIsNotConstructed = errors.New(
	"CancelOrderItemCommand must be created via NewCancelOrderItemCommand constructor",
)

// CancelOrderItemCommand represents a request to cancel an order item.
// StatusID names the catalog status the caller cancels from; it must exist.
//
// Example:
//
//	cmd, err := NewCancelOrderItemCommand(42, 20, 7)
//	if err != nil {
//	    return fmt.Errorf("invalid cancellation: %w", err)
//	}
//
//	handler := NewCancelOrderItemCommandHandler(uowFactory, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    switch errs.KindOf(err) {
//	    case errs.KindConflict:
//	        // already cancelled
//	    case errs.KindBadRequest:
//	        // completed items cannot be cancelled
//	    }
//	}
type CancelOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderItemID kernel.ID
	statusID    kernel.ID
	actorID     kernel.ID

	guard guard.ConstructorGuard
}

func NewCancelOrderItemCommand(orderItemID, statusID, actorID kernel.ID) (CancelOrderItemCommand, error) {
	if err := errors.Join(
		orderItemID.ValidateAs("orderItemId"),
		statusID.ValidateAs("statusId"),
		actorID.ValidateAs("actorId"),
	); err != nil {
		return CancelOrderItemCommand{}, err
	}

	return CancelOrderItemCommand{
		orderItemID: orderItemID,
		statusID:    statusID,
		actorID:     actorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderItemCommandIsNotConstructed if validation fails.
func (c CancelOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderItemCommandIsNotConstructed)
}

func (c CancelOrderItemCommand) OrderItemID() kernel.ID {
	return c.orderItemID
}

func (c CancelOrderItemCommand) StatusID() kernel.ID {
	return c.statusID
}

func (c CancelOrderItemCommand) ActorID() kernel.ID {
	return c.actorID
}
