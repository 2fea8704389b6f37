// Package statusrepo persists the status catalog. The dependency link is a
// nullable self reference, so the forest is stored as parent IDs only.
package statusrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
)

// StatusDTO is a row of order_statuses.
type StatusDTO struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	Label             string `gorm:"size:255;not null"`
	Description       string `gorm:"type:text;not null;default:''"`
	VisibleToCustomer bool   `gorm:"not null;default:false"`
	DependsOnID       *int64 `gorm:"index"`
	// Parent only declares the foreign key; it is never loaded.
	Parent *StatusDTO `gorm:"foreignKey:DependsOnID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (StatusDTO) TableName() string {
	return "order_statuses"
}

func fromDomain(s *status.Status) StatusDTO {
	var dependsOn *int64
	if parent := s.DependsOn(); parent != nil {
		raw := parent.Int64()
		dependsOn = &raw
	}

	return StatusDTO{
		ID:                s.ID().Int64(),
		Label:             s.Label(),
		Description:       s.Description(),
		VisibleToCustomer: s.VisibleToCustomer(),
		DependsOnID:       dependsOn,
	}
}

func toDomain(dto StatusDTO) (*status.Status, error) {
	var dependsOn *kernel.ID
	if dto.DependsOnID != nil {
		parent := kernel.ID(*dto.DependsOnID)
		dependsOn = &parent
	}

	return status.RestoreStatus(
		kernel.ID(dto.ID),
		dto.Label,
		dto.Description,
		dto.VisibleToCustomer,
		dependsOn,
	)
}
