package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
)

// OrderItemRepository loads order items with their workflow and persists
// lifecycle and assignment changes. Items are created by order placement.
type OrderItemRepository interface {
	// Get returns the item or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*orderitem.OrderItem, error)

	// GetForUpdate is Get with the item row locked until the surrounding
	// transaction ends, serialising concurrent transitions of one item.
	GetForUpdate(ctx context.Context, id kernel.ID) (*orderitem.OrderItem, error)

	// ListByOrder returns the items of an order in ascending ID order.
	ListByOrder(ctx context.Context, orderID kernel.ID) ([]*orderitem.OrderItem, error)

	// Update persists lifecycle, assignee and expected-by changes.
	Update(ctx context.Context, item *orderitem.OrderItem) error
}
