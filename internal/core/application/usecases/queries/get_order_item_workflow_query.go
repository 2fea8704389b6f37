package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderItemWorkflowQueryIsNotConstructed = errors.New(
	"GetOrderItemWorkflowQuery must be created via NewGetOrderItemWorkflowQuery constructor",
)

// GetOrderItemWorkflowQuery projects the workflow view of one order item.
type GetOrderItemWorkflowQuery struct {
	orderItemID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderItemWorkflowQuery(orderItemID kernel.ID) (GetOrderItemWorkflowQuery, error) {
	if err := orderItemID.ValidateAs("orderItemId"); err != nil {
		return GetOrderItemWorkflowQuery{}, err
	}
	return GetOrderItemWorkflowQuery{orderItemID: orderItemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderItemWorkflowQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemWorkflowQueryIsNotConstructed)
}

func (q GetOrderItemWorkflowQuery) OrderItemID() kernel.ID {
	return q.orderItemID
}
