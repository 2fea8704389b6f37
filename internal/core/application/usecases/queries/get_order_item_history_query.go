package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderItemHistoryQueryIsNotConstructed = errors.New(
	"GetOrderItemHistoryQuery must be created via NewGetOrderItemHistoryQuery constructor",
)

// GetOrderItemHistoryQuery lists the audit trail of one order item.
type GetOrderItemHistoryQuery struct {
	orderItemID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderItemHistoryQuery(orderItemID kernel.ID) (GetOrderItemHistoryQuery, error) {
	if err := orderItemID.ValidateAs("orderItemId"); err != nil {
		return GetOrderItemHistoryQuery{}, err
	}
	return GetOrderItemHistoryQuery{orderItemID: orderItemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderItemHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemHistoryQueryIsNotConstructed)
}

func (q GetOrderItemHistoryQuery) OrderItemID() kernel.ID {
	return q.orderItemID
}
