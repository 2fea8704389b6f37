package queries_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
	"fulfillment/internal/core/domain/model/role"
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

type MockRoleRepository struct{ mock.Mock }

func (m *MockRoleRepository) GetAll(ctx context.Context) ([]*role.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*role.Role), args.Error(1)
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

type MockActorNameResolver struct{ mock.Mock }

func (m *MockActorNameResolver) ResolveNames(ctx context.Context, ids []kernel.ID) (map[kernel.ID]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.ID]string), args.Error(1)
}

// stubReader hands out the same repositories on every call.
type stubReader struct {
	statuses *MockStatusRepository
	items    *MockOrderItemRepository
	roles    *MockRoleRepository
	history  *MockHistoryRepository
	actors   *MockActorNameResolver
}

func newStubReader() *stubReader {
	return &stubReader{
		statuses: new(MockStatusRepository),
		items:    new(MockOrderItemRepository),
		roles:    new(MockRoleRepository),
		history:  new(MockHistoryRepository),
		actors:   new(MockActorNameResolver),
	}
}

func (r *stubReader) StatusRepository() ports.StatusRepository       { return r.statuses }
func (r *stubReader) OrderItemRepository() ports.OrderItemRepository { return r.items }
func (r *stubReader) RoleRepository() ports.RoleRepository           { return r.roles }
func (r *stubReader) HistoryRepository() ports.HistoryRepository     { return r.history }
func (r *stubReader) ActorNameResolver() ports.ActorNameResolver     { return r.actors }

type catalogReaders struct{ reader *stubReader }

func (f catalogReaders) Create() queries.CatalogReader { return f.reader }

type workflowReaders struct{ reader *stubReader }

func (f workflowReaders) Create() queries.WorkflowReader { return f.reader }

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

func mustRole(t *testing.T, id kernel.ID, capabilities ...kernel.ID) *role.Role {
	t.Helper()
	r, err := role.RestoreRole(id, "role", capabilities)
	require.NoError(t, err)
	return r
}
