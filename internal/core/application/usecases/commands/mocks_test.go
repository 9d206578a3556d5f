package commands_test

import (
	"context"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/cart"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllByUser(ctx context.Context, userID string) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteTerminalOlderThan(ctx context.Context, maxAgeDays int) (int64, error) {
	args := m.Called(ctx, maxAgeDays)
	return args.Get(0).(int64), args.Error(1)
}

type MockPDFRequestRepository struct{ mock.Mock }

func (m *MockPDFRequestRepository) Add(ctx context.Context, r *pdfrequest.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPDFRequestRepository) Update(ctx context.Context, r *pdfrequest.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPDFRequestRepository) Get(ctx context.Context, id kernel.UUID) (*pdfrequest.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pdfrequest.Request), args.Error(1)
}

func (m *MockPDFRequestRepository) GetByCode(ctx context.Context, code string) (*pdfrequest.Request, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pdfrequest.Request), args.Error(1)
}

func (m *MockPDFRequestRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockPDFRequestRepository) GetAllByUser(ctx context.Context, userID string) ([]*pdfrequest.Request, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pdfrequest.Request), args.Error(1)
}

func (m *MockPDFRequestRepository) GetAll(ctx context.Context) ([]*pdfrequest.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pdfrequest.Request), args.Error(1)
}

func (m *MockPDFRequestRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockPDFRequestRepository) DeleteClosedOlderThan(ctx context.Context, maxAgeDays int) (int64, error) {
	args := m.Called(ctx, maxAgeDays)
	return args.Get(0).(int64), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) GetByUser(ctx context.Context, userID string) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) GetOrderingEnabled(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettingsRepository) SetOrderingEnabled(ctx context.Context, enabled bool) error {
	args := m.Called(ctx, enabled)
	return args.Error(0)
}

type MockBroadcaster struct{ mock.Mock }

func (m *MockBroadcaster) BroadcastLocation(orderCode string, point kernel.GeoPoint) {
	m.Called(orderCode, point)
}

// stubUoW is a hand-rolled unit of work that satisfies every command UoW
// interface and tracks transaction outcomes.
type stubUoW struct {
	orders    *MockOrderRepository
	requests  *MockPDFRequestRepository
	carts     *MockCartRepository
	settings  *MockSettingsRepository
	began     bool
	committed bool
}

func newStubUoW() *stubUoW {
	return &stubUoW{
		orders:   &MockOrderRepository{},
		requests: &MockPDFRequestRepository{},
		carts:    &MockCartRepository{},
		settings: &MockSettingsRepository{},
	}
}

func (u *stubUoW) Begin(context.Context) error {
	u.began = true
	return nil
}

func (u *stubUoW) Commit(context.Context) error {
	u.committed = true
	return nil
}

func (u *stubUoW) Rollback(context.Context) error {
	return nil
}

func (u *stubUoW) OrderRepository() ports.OrderRepository           { return u.orders }
func (u *stubUoW) PDFRequestRepository() ports.PDFRequestRepository { return u.requests }
func (u *stubUoW) CartRepository() ports.CartRepository             { return u.carts }
func (u *stubUoW) SettingsRepository() ports.SettingsRepository     { return u.settings }

type stubOrderUoWFactory struct{ uow *stubUoW }

func (f stubOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type stubPDFRequestUoWFactory struct{ uow *stubUoW }

func (f stubPDFRequestUoWFactory) Create() commands.PDFRequestUoW { return f.uow }

type stubCartUoWFactory struct{ uow *stubUoW }

func (f stubCartUoWFactory) Create() commands.CartUoW { return f.uow }

type stubSettingsUoWFactory struct{ uow *stubUoW }

func (f stubSettingsUoWFactory) Create() commands.SettingsUoW { return f.uow }

type stubCheckoutUoWFactory struct{ uow *stubUoW }

func (f stubCheckoutUoWFactory) Create() commands.CheckoutUoW { return f.uow }

type stubRequestCartUoWFactory struct{ uow *stubUoW }

func (f stubRequestCartUoWFactory) Create() commands.RequestCartUoW { return f.uow }

type stubMaintenanceUoWFactory struct{ uow *stubUoW }

func (f stubMaintenanceUoWFactory) Create() commands.MaintenanceUoW { return f.uow }
