package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/role"
)

// RoleRepository reads roles and their capability lists.
type RoleRepository interface {
	// GetAll returns every role, ascending by ID, capabilities in stored order.
	GetAll(ctx context.Context) ([]*role.Role, error)
}
