package commands_test

import (
	"context"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithPendingDispatch(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSubmissionGateway struct{ mock.Mock }

func (m *MockSubmissionGateway) Submit(ctx context.Context, record ports.SubmissionRecord, actorRole string, authToken string) error {
	args := m.Called(ctx, record, actorRole, authToken)
	return args.Error(0)
}

func mustPhone(t *testing.T, number string) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone(number)
	require.NoError(t, err)
	return phone
}

func newStoredOrder(t *testing.T, category order.Category) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Acme Traders", mustPhone(t, "9876543210"), category, "Morinda")
	require.NoError(t, err)
	return o
}
