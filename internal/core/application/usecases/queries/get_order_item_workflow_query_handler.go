package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// GetOrderItemWorkflowQueryHandler loads an order item with its history,
// the statuses and roles it refers to, and projects the workflow view.
//
// Example:
//
//	handler := NewGetOrderItemWorkflowQueryHandler(readers)
//	query, _ := NewGetOrderItemWorkflowQuery(42)
//
//	view, err := handler.Handle(ctx, query)
//	if errs.KindOf(err) == errs.KindNotFound {
//	    // unknown item, or a template step missing from the catalog
//	}
type GetOrderItemWorkflowQueryHandler struct {
	readers   WorkflowReaderFactory
	projector services.WorkflowProjector
}

func NewGetOrderItemWorkflowQueryHandler(readers WorkflowReaderFactory) GetOrderItemWorkflowQueryHandler {
	return GetOrderItemWorkflowQueryHandler{
		readers:   readers,
		projector: services.NewWorkflowProjector(),
	}
}

// Handle fails with errs.ObjectNotFoundError when the item is missing or
// refers to a status that no longer exists.
func (h GetOrderItemWorkflowQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemWorkflowQuery,
) (services.WorkflowView, error) {
	if err := query.Validate(); err != nil {
		return services.WorkflowView{}, err
	}

	reader := h.readers.Create()

	item, err := reader.OrderItemRepository().Get(ctx, query.OrderItemID())
	if err != nil {
		return services.WorkflowView{}, err
	}

	records, err := services.NewHistoryLedger(reader.HistoryRepository(), nil).ListFor(ctx, item.ID())
	if err != nil {
		return services.WorkflowView{}, err
	}

	statuses, err := reader.StatusRepository().GetMany(ctx, h.projector.StatusIDs(item, records))
	if err != nil {
		return services.WorkflowView{}, err
	}

	roles, err := reader.RoleRepository().GetAll(ctx)
	if err != nil {
		return services.WorkflowView{}, err
	}

	names, err := reader.ActorNameResolver().ResolveNames(ctx, h.projector.ActorIDs(records))
	if err != nil {
		return services.WorkflowView{}, err
	}

	return h.projector.Project(services.WorkflowInput{
		Item:       item,
		Statuses:   statuses,
		Roles:      services.NewRoleVisibilityIndex(roles),
		History:    records,
		ActorNames: names,
	})
}
