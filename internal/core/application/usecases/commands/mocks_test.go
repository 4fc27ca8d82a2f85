package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodbank/internal/core/application/usecases/commands"
	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/core/domain/model/settings"
	"foodbank/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByPickup(ctx context.Context, pickup time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, pickup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Settings), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyApproved(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotifier) NotifyRejected(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotifier) NotifyModifiedAndApproved(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

// Shared fixtures. The fixed clock is a Tuesday so the default settings
// open a Thursday-through-Thursday booking window.
var fixedNow = time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

func testClock() time.Time { return fixedNow }

func testSettings(t *testing.T) settings.Settings {
	t.Helper()
	st, err := settings.NewSettings(2, false, settings.Options{}, nil)
	require.NoError(t, err)
	return st
}

func testGoods(t *testing.T) order.Goods {
	t.Helper()
	c, err := order.NewCountCategory(2)
	require.NoError(t, err)
	return order.Goods{Produce: c, Meat: c, Vito: c, Dry: c}
}

func testPendingOrder(t *testing.T, organization string, pickup time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), organization, false, testGoods(t), nil, "", pickup)
	require.NoError(t, err)
	return o
}

func partnerActor(t *testing.T, organization string) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(organization, false)
	require.NoError(t, err)
	return actor
}

func adminActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor("", true)
	require.NoError(t, err)
	return actor
}

// validPickup is a weekday template slot inside the booking window opened
// by testSettings at fixedNow.
var validPickup = time.Date(2026, time.March, 12, 10, 0, 0, 0, time.UTC)
