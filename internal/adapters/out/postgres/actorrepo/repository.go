// Package actorrepo resolves actor display names from the users table,
// which is owned by the user management service.
package actorrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// UserDTO is the part of a user row needed for display.
type UserDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:255;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

type GormActorNameResolver struct {
	db *gorm.DB
}

func NewGormActorNameResolver(db *gorm.DB) *GormActorNameResolver {
	return &GormActorNameResolver{db: db}
}

// ResolveNames returns the names of the users found among ids.
func (r *GormActorNameResolver) ResolveNames(ctx context.Context, ids []kernel.ID) (map[kernel.ID]string, error) {
	names := make(map[kernel.ID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}

	var users []UserDTO
	if err := r.db.WithContext(ctx).Select("id", "name").Where("id IN ?", raw).Find(&users).Error; err != nil {
		return nil, err
	}

	for _, u := range users {
		names[kernel.ID(u.ID)] = u.Name
	}

	return names, nil
}
