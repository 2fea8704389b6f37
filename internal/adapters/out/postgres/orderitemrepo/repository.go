package orderitemrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/dberr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resource = "order item"

// GormOrderItemRepository implements OrderItemRepository using GORM.
type GormOrderItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormOrderItemRepository creates a new GORM order item repository.
func NewGormOrderItemRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderItemRepository {
	return &GormOrderItemRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderItemRepository) withWorkflow(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Workflow.Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

// Get retrieves an order item with its workflow by ID.
func (r *GormOrderItemRepository) Get(ctx context.Context, id kernel.ID) (*orderitem.OrderItem, error) {
	return r.get(ctx, id, r.withWorkflow(ctx))
}

// GetForUpdate locks the order item row until the transaction ends.
// SQLite has no row locks; its writers are serialised by the database lock.
func (r *GormOrderItemRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*orderitem.OrderItem, error) {
	query := r.withWorkflow(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.get(ctx, id, query)
}

func (r *GormOrderItemRepository) get(_ context.Context, id kernel.ID, query *gorm.DB) (*orderitem.OrderItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderItemDTO
	if err := query.First(&dto, "order_items.id = ?", id.Int64()).Error; err != nil {
		return nil, dberr.Translate(err, resource, id)
	}

	return toDomain(dto)
}

// ListByOrder retrieves the items of an order ascending by ID.
func (r *GormOrderItemRepository) ListByOrder(ctx context.Context, orderID kernel.ID) ([]*orderitem.OrderItem, error) {
	var dtos []OrderItemDTO
	if err := r.withWorkflow(ctx).Where("order_id = ?", orderID.Int64()).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*orderitem.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Update saves lifecycle and assignment of an existing order item.
func (r *GormOrderItemRepository) Update(ctx context.Context, item *orderitem.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&OrderItemDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"lifecycle":   dto.Lifecycle,
		"assignee_id": dto.AssigneeID,
		"expected_by": dto.ExpectedBy,
	})
	if result.Error != nil {
		return dberr.Translate(result.Error, resource, dto.ID)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(resource, item.ID())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}
