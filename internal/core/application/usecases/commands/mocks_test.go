package commands_test

import (
	"context"
	"errors"
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/customer"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, id, name string, price float64) *product.Product {
	t.Helper()
	amount, err := kernel.NewMoneyFromFloat(price)
	require.NoError(t, err)
	p, err := product.NewProduct(id, name, amount, product.CategorySnack, "", "")
	require.NoError(t, err)
	return p
}

func testCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	email, err := customer.NewEmail("john_doe@user.com.br")
	require.NoError(t, err)
	taxID, err := customer.NewTaxID("111.111.111-11")
	require.NoError(t, err)
	c, err := customer.NewCustomer(id, "John Doe", email, taxID)
	require.NoError(t, err)
	return c
}

func restoreTestOrder(
	t *testing.T,
	id kernel.UUID,
	status order.Status,
	payment order.PaymentStatus,
	snapshot *order.CustomerSnapshot,
) *order.Order {
	t.Helper()
	item, err := order.RestoreItem("123", "Hamburguer", mustCents(t, 1000), 1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, status, payment, []order.Item{item}, mustCents(t, 1000), "", snapshot)
	require.NoError(t, err)
	return o
}

func mustCents(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

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
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) DeleteCustomerData(ctx context.Context, customerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetByIDs(ctx context.Context, ids []string) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if products, ok := args.Get(0).([]*product.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) GetByID(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotificationOutbox struct{ mock.Mock }

func (m *MockNotificationOutbox) Add(ctx context.Context, payload []byte) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockNotificationOutbox) FetchPending(_ context.Context, _ int) ([]ports.NotificationMessage, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockNotificationOutbox) MarkSent(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
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

type MockPaymentUoW struct{ mock.Mock }

func (m *MockPaymentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPaymentUoW) NotificationOutbox() ports.NotificationOutbox {
	args := m.Called()
	return args.Get(0).(ports.NotificationOutbox)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}
