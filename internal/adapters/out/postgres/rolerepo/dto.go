// Package rolerepo reads roles and their ordered capability lists.
package rolerepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/role"
)

type RoleDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Name         string          `gorm:"size:255;not null"`
	Capabilities []RoleStatusDTO `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

func (RoleDTO) TableName() string {
	return "roles"
}

// RoleStatusDTO grants a role the right to view a status. Position keeps
// the capability list ordered.
type RoleStatusDTO struct {
	RoleID   int64 `gorm:"primaryKey"`
	Position int   `gorm:"primaryKey"`
	StatusID int64 `gorm:"not null;index"`
}

func (RoleStatusDTO) TableName() string {
	return "role_statuses"
}

func toDomain(dto RoleDTO) (*role.Role, error) {
	capabilities := make([]kernel.ID, 0, len(dto.Capabilities))
	for _, c := range dto.Capabilities {
		capabilities = append(capabilities, kernel.ID(c.StatusID))
	}
	return role.RestoreRole(kernel.ID(dto.ID), dto.Name, capabilities)
}
