// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across the catalog, order item and history repositories
//   - Aggregate tracking of order items and history records written in a transaction
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	item, err := uow.OrderItemRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// ... mutate item, append history
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Order item transitions lock the item row (SELECT ... FOR UPDATE on PostgreSQL)
//
// The package also opens the connection (PostgreSQL, or SQLite for local
// runs and fast tests) and owns the schema migrations.
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/actorrepo"
	"fulfillment/internal/adapters/out/postgres/historyrepo"
	"fulfillment/internal/adapters/out/postgres/orderitemrepo"
	"fulfillment/internal/adapters/out/postgres/rolerepo"
	"fulfillment/internal/adapters/out/postgres/statusrepo"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during the unit of work.
type TrackedAggregate struct {
	ID        any
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := postgres.Open(settings)
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create returning the concrete type, which also exposes
// the tracked aggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// Repositories obtained before Begin, or after Commit or Rollback, run
// directly on the connection. This is how the read side uses it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Aggregates tracked during the transaction are forgotten.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) StatusRepository() ports.StatusRepository {
	return statusrepo.NewGormStatusRepository(uow.conn())
}

// OrderItemRepository provides access to order item persistence within the unit of work.
// The returned repository tracks every order item it updates.
func (uow *GormUnitOfWork) OrderItemRepository() ports.OrderItemRepository {
	return orderitemrepo.NewGormOrderItemRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RoleRepository() ports.RoleRepository {
	return rolerepo.NewGormRoleRepository(uow.conn())
}

// HistoryRepository provides access to the history ledger store within the unit of work.
// The returned repository tracks every record it appends.
func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ActorNameResolver() ports.ActorNameResolver {
	return actorrepo.NewGormActorNameResolver(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is called by repository implementations when aggregates are written.
func (uow *GormUnitOfWork) TrackAggregate(id any, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written since the unit of work
// was created or last rolled back.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return append([]TrackedAggregate(nil), uow.trackedAggregates...)
}
