package statusrepo

import (
	"context"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/dberr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

const resource = "status"

// GormStatusRepository implements ports.StatusRepository using GORM.
type GormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// Add inserts the status; the ID is assigned by the database.
func (r *GormStatusRepository) Add(ctx context.Context, s *status.Status) (*status.Status, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(s)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit("Parent").Create(&dto).Error; err != nil {
		return nil, dberr.Translate(err, resource, s.Label())
	}

	return toDomain(dto)
}

// Update saves all fields, clearing the parent when the status became a root.
func (r *GormStatusRepository) Update(ctx context.Context, s *status.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	result := r.db.WithContext(ctx).Model(&StatusDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"label":               dto.Label,
		"description":         dto.Description,
		"visible_to_customer": dto.VisibleToCustomer,
		"depends_on_id":       dto.DependsOnID,
	})
	if result.Error != nil {
		return dberr.Translate(result.Error, resource, dto.ID)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(resource, dto.ID)
	}

	return nil
}

func (r *GormStatusRepository) Get(ctx context.Context, id kernel.ID) (*status.Status, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, dberr.Translate(err, resource, id)
	}

	return toDomain(dto)
}

func (r *GormStatusRepository) GetMany(ctx context.Context, ids []kernel.ID) (map[kernel.ID]*status.Status, error) {
	found := make(map[kernel.ID]*status.Status, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}

	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		found[s.ID()] = s
	}

	return found, nil
}

func (r *GormStatusRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&StatusDTO{}).Where("id = ?", id.Int64()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Remove deletes a status nothing depends on.
func (r *GormStatusRepository) Remove(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var dependants int64
	if err := r.db.WithContext(ctx).Model(&StatusDTO{}).Where("depends_on_id = ?", id.Int64()).Count(&dependants).Error; err != nil {
		return err
	}
	if dependants > 0 {
		return errs.NewConflictError(
			fmt.Sprintf("%s %d", resource, id),
			fmt.Sprintf("has %d dependent statuses", dependants),
		)
	}

	result := r.db.WithContext(ctx).Delete(&StatusDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return dberr.Translate(result.Error, resource, id)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(resource, id)
	}

	return nil
}

// ListBranches reads the catalog once and groups direct children under
// their roots. Children of non-root nodes are not part of any branch.
func (r *GormStatusRepository) ListBranches(ctx context.Context) ([]status.Branch, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).
		Where("id <> ?", status.CancelSentinelID.Int64()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	branches := make([]status.Branch, 0)
	rootIndex := make(map[kernel.ID]int)
	children := make(map[kernel.ID][]*status.Status)

	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		if s.IsRoot() {
			rootIndex[s.ID()] = len(branches)
			branches = append(branches, status.Branch{Root: s})
			continue
		}
		parent := *s.DependsOn()
		children[parent] = append(children[parent], s)
	}

	for parent, kids := range children {
		if i, ok := rootIndex[parent]; ok {
			branches[i].Children = kids
		}
	}

	return branches, nil
}
