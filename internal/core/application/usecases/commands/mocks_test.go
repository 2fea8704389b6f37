package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) Add(ctx context.Context, s *status.Status) (*status.Status, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

func (m *MockStatusRepository) Update(ctx context.Context, s *status.Status) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStatusRepository) Get(ctx context.Context, id kernel.ID) (*status.Status, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

func (m *MockStatusRepository) GetMany(ctx context.Context, ids []kernel.ID) (map[kernel.ID]*status.Status, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.ID]*status.Status), args.Error(1)
}

func (m *MockStatusRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStatusRepository) Remove(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStatusRepository) ListBranches(ctx context.Context) ([]status.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]status.Branch), args.Error(1)
}

type MockOrderItemRepository struct{ mock.Mock }

func (m *MockOrderItemRepository) Get(ctx context.Context, id kernel.ID) (*orderitem.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderitem.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*orderitem.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderitem.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) ListByOrder(ctx context.Context, orderID kernel.ID) ([]*orderitem.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orderitem.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) Update(ctx context.Context, item *orderitem.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, record *history.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListFor(ctx context.Context, orderItemID kernel.ID) ([]*history.Record, error) {
	args := m.Called(ctx, orderItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*history.Record), args.Error(1)
}

func (m *MockHistoryRepository) HasCancellation(ctx context.Context, orderItemID kernel.ID) (bool, error) {
	args := m.Called(ctx, orderItemID)
	return args.Bool(0), args.Error(1)
}

type MockStatusUoW struct{ mock.Mock }

func (m *MockStatusUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockOrderItemUoW struct{ mock.Mock }

func (m *MockOrderItemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderItemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderItemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderItemUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

func (m *MockOrderItemUoW) OrderItemRepository() ports.OrderItemRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderItemRepository)
}

func (m *MockOrderItemUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockOrderItemUoWFactory struct{ mock.Mock }

func (m *MockOrderItemUoWFactory) Create() commands.OrderItemUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderItemUoW)
}

func idPtr(id kernel.ID) *kernel.ID { return &id }

func mustStatus(t *testing.T, id kernel.ID, label string, parent *kernel.ID) *status.Status {
	t.Helper()
	s, err := status.RestoreStatus(id, label, "", true, parent)
	require.NoError(t, err)
	return s
}

func mustItem(t *testing.T, id kernel.ID, lifecycle orderitem.Lifecycle, sequence ...kernel.ID) *orderitem.OrderItem {
	t.Helper()
	wf, err := orderitem.NewWorkflow(3, "standard", sequence)
	require.NoError(t, err)
	item, err := orderitem.RestoreOrderItem(id, 100, wf, lifecycle, nil, nil)
	require.NoError(t, err)
	return item
}
