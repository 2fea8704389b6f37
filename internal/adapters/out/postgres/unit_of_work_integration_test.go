package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real
// PostgreSQL database, where row locks and the partial unique index apply.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

type orderItemUoWFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f orderItemUoWFactory) Create() commands.OrderItemUoW {
	return f.factory.Create()
}

var t0 = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

// SetupSuite starts PostgreSQL and migrates the schema once for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.RunPostgres(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest empties the tables, keeping only the seeded sentinel.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Reset(suite.db))
	pgtest.Status(suite.T(), suite.db, 10, "Packing", nil)
	pgtest.Status(suite.T(), suite.db, 20, "Shipped", nil)
	pgtest.OrderItem(suite.T(), suite.db, 7, 100, "Active", 10, 20)
}

// TearDownSuite terminates the container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsIdempotent() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.db))

	sentinel, err := suite.factory.Create().StatusRepository().Get(context.Background(), status.CancelSentinelID)
	suite.Require().NoError(err)
	suite.Equal(postgres_adapter.SentinelLabel, sentinel.Label())
}

// TestStatusIDs_ContinueAfterSentinel verifies the serial was moved past
// the explicitly seeded sentinel row.
func (suite *UnitOfWorkIntegrationTestSuite) TestStatusIDs_ContinueAfterSentinel() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec("DELETE FROM order_statuses WHERE id <> 1").Error)
	suite.Require().NoError(postgres_adapter.SeedSentinel(suite.db))

	s, err := status.NewStatus("Picking", "", true, nil)
	suite.Require().NoError(err)

	stored, err := suite.factory.Create().StatusRepository().Add(ctx, s)

	suite.Require().NoError(err)
	suite.Greater(stored.ID().Int64(), status.CancelSentinelID.Int64())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without an active transaction")
	suite.Require().Error(uow.Rollback(ctx), "rollback without an active transaction")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
}

// TestUnitOfWork_CommitPersistsTransition verifies item and history writes
// of one transaction become visible together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsTransition() {
	ctx := context.Background()
	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))

	item, err := uow.OrderItemRepository().GetForUpdate(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().NoError(item.Cancel())
	record, err := history.NewCancellationRecord(7, 3, t0)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.HistoryRepository().Append(ctx, record))
	suite.Require().NoError(uow.OrderItemRepository().Update(ctx, item))

	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.TrackedAggregates()
	suite.Require().Len(tracked, 2)
	suite.Equal(record.ID(), tracked[0].ID)
	suite.Equal(kernel.ID(7), tracked[1].ID)

	reader := suite.factory.Create()
	stored, err := reader.OrderItemRepository().Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(orderitem.Cancelled, stored.Lifecycle())
	has, err := reader.HistoryRepository().HasCancellation(ctx, 7)
	suite.Require().NoError(err)
	suite.True(has)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))

	item, err := uow.OrderItemRepository().GetForUpdate(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().NoError(item.Complete())
	suite.Require().NoError(uow.OrderItemRepository().Update(ctx, item))
	record, err := history.NewProgressRecord(7, 10, 3, t0)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.HistoryRepository().Append(ctx, record))
	suite.Require().Len(uow.TrackedAggregates(), 2)

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(uow.TrackedAggregates())
	reader := suite.factory.Create()
	stored, err := reader.OrderItemRepository().Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(orderitem.Active, stored.Lifecycle())
	records, err := reader.HistoryRepository().ListFor(ctx, 7)
	suite.Require().NoError(err)
	suite.Empty(records)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestHistory_ListForOrdersByTimestamp() {
	ctx := context.Background()
	repo := suite.factory.Create().HistoryRepository()

	for _, r := range []struct {
		statusID kernel.ID
		at       time.Time
	}{
		{20, t0.Add(time.Hour)},
		{10, t0},
	} {
		record, err := history.NewProgressRecord(7, r.statusID, 3, r.at)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Append(ctx, record))
	}

	records, err := repo.ListFor(ctx, 7)

	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal(kernel.ID(10), records[0].StatusID())
	suite.True(records[0].Timestamp().Equal(t0))
	suite.Equal(kernel.ID(20), records[1].StatusID())
}

// TestHistory_IndexRejectsSecondCancellation bypasses the item lock and
// relies on the partial unique index alone.
func (suite *UnitOfWorkIntegrationTestSuite) TestHistory_IndexRejectsSecondCancellation() {
	ctx := context.Background()

	first, err := history.NewCancellationRecord(7, 3, t0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().HistoryRepository().Append(ctx, first))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	second, err := history.NewCancellationRecord(7, 4, t0.Add(time.Second))
	suite.Require().NoError(err)

	err = uow.HistoryRepository().Append(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(uow.Rollback(ctx))
}

// TestCancel_ConcurrentRequestsCancelOnce races several cancellations of
// the same item; the row lock lets exactly one of them through.
func (suite *UnitOfWorkIntegrationTestSuite) TestCancel_ConcurrentRequestsCancelOnce() {
	ctx := context.Background()
	const attempts = 5

	handler := commands.NewCancelOrderItemCommandHandler(orderItemUoWFactory{factory: suite.factory}, nil)

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cmd, err := commands.NewCancelOrderItemCommand(7, 10, kernel.ID(i+1))
			if err != nil {
				results[i] = err
				return
			}
			results[i] = handler.Handle(ctx, cmd)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, errs.ErrConflict)
	}
	suite.Equal(1, succeeded)

	var cancellations int64
	suite.Require().NoError(suite.db.Table("order_history").
		Where("order_item_id = ? AND kind = ?", 7, history.Cancellation.String()).
		Count(&cancellations).Error)
	suite.Equal(int64(1), cancellations)

	item, err := suite.factory.Create().OrderItemRepository().Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(orderitem.Cancelled, item.Lifecycle())
}

// TestCancel_UnknownStatusLeavesItemUntouched is scenario C on a real store.
func (suite *UnitOfWorkIntegrationTestSuite) TestCancel_UnknownStatusLeavesItemUntouched() {
	ctx := context.Background()
	handler := commands.NewCancelOrderItemCommandHandler(orderItemUoWFactory{factory: suite.factory}, nil)
	cmd, err := commands.NewCancelOrderItemCommand(7, 999, 3)
	suite.Require().NoError(err)

	err = handler.Handle(ctx, cmd)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	item, err := suite.factory.Create().OrderItemRepository().Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(orderitem.Active, item.Lifecycle())
	records, err := suite.factory.Create().HistoryRepository().ListFor(ctx, 7)
	suite.Require().NoError(err)
	suite.Empty(records)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a PostgreSQL container")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
