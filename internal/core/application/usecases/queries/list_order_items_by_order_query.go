package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
	"fulfillment/internal/pkg/guard"
)

var ErrListOrderItemsByOrderQueryIsNotConstructed = errors.New(
	"ListOrderItemsByOrderQuery must be created via NewListOrderItemsByOrderQuery constructor",
)

// ListOrderItemsByOrderQuery lists the items of one order.
type ListOrderItemsByOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewListOrderItemsByOrderQuery(orderID kernel.ID) (ListOrderItemsByOrderQuery, error) {
	if err := orderID.ValidateAs("orderId"); err != nil {
		return ListOrderItemsByOrderQuery{}, err
	}
	return ListOrderItemsByOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderItemsByOrderQuery) Validate() error {
	return q.guard.Validate(ErrListOrderItemsByOrderQueryIsNotConstructed)
}

func (q ListOrderItemsByOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// ListOrderItemsByOrderQueryResponse is the read model of one order item.
type ListOrderItemsByOrderQueryResponse struct {
	ID           kernel.ID
	OrderID      kernel.ID
	WorkflowID   kernel.ID
	WorkflowName string
	Lifecycle    orderitem.Lifecycle
	AssigneeID   *kernel.ID
	ExpectedBy   *time.Time
}
