// Package historyrepo stores the append-only order item history.
//
// Each row carries its kind explicitly. The partial unique index
// idx_order_history_single_cancellation (created by the migrations) allows
// at most one cancellation row per order item.
package historyrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type HistoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderItemID int64     `gorm:"not null;index:idx_order_history_item_time,priority:1"`
	StatusID    int64     `gorm:"not null"`
	ActorID     int64     `gorm:"not null"`
	Kind        string    `gorm:"size:16;not null"`
	Timestamp   time.Time `gorm:"not null;index:idx_order_history_item_time,priority:2"`
}

func (HistoryDTO) TableName() string {
	return "order_history"
}

func fromDomain(r *history.Record) HistoryDTO {
	return HistoryDTO{
		ID:          r.ID().Bytes(),
		OrderItemID: r.OrderItemID().Int64(),
		StatusID:    r.StatusID().Int64(),
		ActorID:     r.ActorID().Int64(),
		Kind:        r.Kind().String(),
		Timestamp:   r.Timestamp(),
	}
}

func toDomain(dto HistoryDTO) (*history.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return history.RestoreRecord(
		id,
		kernel.ID(dto.OrderItemID),
		kernel.ID(dto.StatusID),
		kernel.ID(dto.ActorID),
		history.Kind(dto.Kind),
		dto.Timestamp,
	)
}
