package commands_test

import (
	"context"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return money
}

func testItemSpecs(t *testing.T) []commands.ItemSpec {
	t.Helper()
	return []commands.ItemSpec{
		{ProductCode: "PROD-001", ProductName: "Laptop", Quantity: 2, UnitPrice: mustMoney(t, "100.00")},
		{ProductCode: "PROD-002", ProductName: "Mouse", Quantity: 1, UnitPrice: mustMoney(t, "50.00")},
	}
}

// storedOrder builds an aggregate in the given status, walking the valid
// transition chain from PENDING.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem("PROD-001", "Laptop", 1, mustMoney(t, "10.00"))
	require.NoError(t, err)

	stored, err := order.NewOrder("CUST-001", []order.Item{item}, "")
	require.NoError(t, err)

	steps := map[order.Status][]order.Status{
		order.Pending:    {},
		order.Confirmed:  {order.Confirmed},
		order.Processing: {order.Confirmed, order.Processing},
		order.Shipped:    {order.Confirmed, order.Processing, order.Shipped},
		order.Delivered:  {order.Confirmed, order.Processing, order.Shipped, order.Delivered},
		order.Cancelled:  {order.Cancelled},
	}
	for _, step := range steps[status] {
		require.NoError(t, stored.ChangeStatus(step))
	}

	return stored
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByOrderID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, page, size int) ([]*order.Order, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomerID(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByStatus(
	ctx context.Context, status order.Status, page, size int,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) DeleteByOrderID(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) ExistsByOrderID(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
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

type MockCustomerGateway struct{ mock.Mock }

func (m *MockCustomerGateway) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}
