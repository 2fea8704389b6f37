package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ActorNameResolver renders actor IDs for display. IDs it cannot resolve
// are absent from the result.
type ActorNameResolver interface {
	ResolveNames(ctx context.Context, ids []kernel.ID) (map[kernel.ID]string, error)
}
