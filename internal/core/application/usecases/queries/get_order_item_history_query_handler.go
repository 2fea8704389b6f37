package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/services"
)

type GetOrderItemHistoryQueryHandler struct {
	readers WorkflowReaderFactory
}

func NewGetOrderItemHistoryQueryHandler(readers WorkflowReaderFactory) GetOrderItemHistoryQueryHandler {
	return GetOrderItemHistoryQueryHandler{readers: readers}
}

// Handle returns the records ascending by timestamp. An unknown item fails
// with errs.ObjectNotFoundError rather than yielding an empty trail.
func (h GetOrderItemHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemHistoryQuery,
) ([]*history.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reader := h.readers.Create()
	if _, err := reader.OrderItemRepository().Get(ctx, query.OrderItemID()); err != nil {
		return nil, err
	}

	return services.NewHistoryLedger(reader.HistoryRepository(), nil).ListFor(ctx, query.OrderItemID())
}
