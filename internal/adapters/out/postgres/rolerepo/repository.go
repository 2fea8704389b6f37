package rolerepo

import (
	"context"

	"fulfillment/internal/core/domain/model/role"

	"gorm.io/gorm"
)

type GormRoleRepository struct {
	db *gorm.DB
}

func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// GetAll loads every role ascending by ID with capabilities in position order.
func (r *GormRoleRepository) GetAll(ctx context.Context) ([]*role.Role, error) {
	var dtos []RoleDTO
	err := r.db.WithContext(ctx).
		Preload("Capabilities", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	roles := make([]*role.Role, 0, len(dtos))
	for _, dto := range dtos {
		r, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}

	return roles, nil
}
