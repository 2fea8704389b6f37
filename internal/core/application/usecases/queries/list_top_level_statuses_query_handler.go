package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/status"
)

type ListTopLevelStatusesQueryHandler struct {
	readers CatalogReaderFactory
}

func NewListTopLevelStatusesQueryHandler(readers CatalogReaderFactory) ListTopLevelStatusesQueryHandler {
	return ListTopLevelStatusesQueryHandler{readers: readers}
}

// Handle returns the flattened catalog in store order. An empty catalog
// yields an empty, non-nil slice.
func (h ListTopLevelStatusesQueryHandler) Handle(
	ctx context.Context,
	query ListTopLevelStatusesQuery,
) ([]*status.Status, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	branches, err := h.readers.Create().StatusRepository().ListBranches(ctx)
	if err != nil {
		return nil, err
	}

	return status.Flatten(branches), nil
}
