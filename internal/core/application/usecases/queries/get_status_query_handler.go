package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/status"
)

// GetStatusQueryHandler returns single catalog nodes.
type GetStatusQueryHandler struct {
	readers CatalogReaderFactory
}

func NewGetStatusQueryHandler(readers CatalogReaderFactory) GetStatusQueryHandler {
	return GetStatusQueryHandler{readers: readers}
}

// Handle returns the status or errs.ObjectNotFoundError.
func (h GetStatusQueryHandler) Handle(ctx context.Context, query GetStatusQuery) (*status.Status, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.readers.Create().StatusRepository().Get(ctx, query.StatusID())
}
