package postgres

import (
	"fulfillment/internal/adapters/out/postgres/actorrepo"
	"fulfillment/internal/adapters/out/postgres/historyrepo"
	"fulfillment/internal/adapters/out/postgres/orderitemrepo"
	"fulfillment/internal/adapters/out/postgres/rolerepo"
	"fulfillment/internal/adapters/out/postgres/statusrepo"
	"fulfillment/internal/core/domain/model/status"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SentinelLabel is the label the cancellation sentinel is seeded with.
const SentinelLabel = "Cancelled"

// Migrate creates or updates the schema and seeds the cancellation
// sentinel. It is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&statusrepo.StatusDTO{},
		&orderitemrepo.WorkflowDTO{},
		&orderitemrepo.WorkflowStepDTO{},
		&orderitemrepo.OrderItemDTO{},
		&rolerepo.RoleDTO{},
		&rolerepo.RoleStatusDTO{},
		&actorrepo.UserDTO{},
		&historyrepo.HistoryDTO{},
	); err != nil {
		return err
	}

	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_order_history_single_cancellation
		ON order_history (order_item_id)
		WHERE kind = 'cancellation'
	`).Error; err != nil {
		return err
	}

	return SeedSentinel(db)
}

// SeedSentinel inserts the cancellation sentinel if it is missing.
func SeedSentinel(db *gorm.DB) error {
	sentinel := statusrepo.StatusDTO{
		ID:                status.CancelSentinelID.Int64(),
		Label:             SentinelLabel,
		Description:       "order item was cancelled",
		VisibleToCustomer: true,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Omit("Parent").Create(&sentinel).Error; err != nil {
		return err
	}

	if db.Dialector.Name() != DriverPostgres {
		return nil
	}

	// the explicit ID bypassed the sequence
	return db.Exec(`
		SELECT setval(
			pg_get_serial_sequence('order_statuses', 'id'),
			GREATEST((SELECT MAX(id) FROM order_statuses), 1)
		)
	`).Error
}
