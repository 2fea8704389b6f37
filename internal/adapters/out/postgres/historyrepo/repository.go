package historyrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM.
type GormHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

func NewGormHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormHistoryRepository {
	return &GormHistoryRepository{db: db, tracker: tracker}
}

// Append inserts the record. A unique violation can only come from the
// single cancellation index and is reported as errs.ConflictError.
func (r *GormHistoryRepository) Append(ctx context.Context, record *history.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("order item %d", record.OrderItemID()),
				"is already cancelled",
				err,
			)
		}
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// ListFor returns the records of an order item ascending by timestamp.
func (r *GormHistoryRepository) ListFor(ctx context.Context, orderItemID kernel.ID) ([]*history.Record, error) {
	var dtos []HistoryDTO
	if err := r.db.WithContext(ctx).
		Where("order_item_id = ?", orderItemID.Int64()).
		Order(`"timestamp" ASC, id ASC`).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*history.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *GormHistoryRepository) HasCancellation(ctx context.Context, orderItemID kernel.ID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&HistoryDTO{}).
		Where("order_item_id = ? AND kind = ?", orderItemID.Int64(), history.Cancellation.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
