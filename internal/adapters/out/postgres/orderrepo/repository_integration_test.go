package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodbank/internal/adapters/out/postgres/orderrepo"
	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior, including the active-pickup unique index.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError is required for the unique index violation to surface
	// as gorm.ErrDuplicatedKey, same as in production.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Community Fridge", suite.slot(0))
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateActivePickup_ReturnsSlotIsTakenError() {
	ctx := context.Background()
	pickup := suite.slot(0)

	first := suite.createTestOrder("Community Fridge", pickup)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrder("Other Pantry", pickup)
	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrSlotIsTaken)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SamePickupAsTerminalOrder_Success() {
	ctx := context.Background()
	pickup := suite.slot(0)

	// A canceled order does not hold its slot; the partial index only
	// covers active statuses.
	canceled := suite.restoreTestOrder("Community Fridge", order.Canceled, pickup)
	suite.tracker.On("TrackAggregate", canceled.ID(), canceled).Once()
	suite.Require().NoError(suite.repository.Add(ctx, canceled))

	fresh := suite.createTestOrder("Other Pantry", pickup)
	suite.tracker.On("TrackAggregate", fresh.ID(), fresh).Once()

	err := suite.repository.Add(ctx, fresh)

	suite.Require().NoError(err)
	suite.assertOrderCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	count, err := order.NewCountCategory(4)
	suite.Require().NoError(err)
	goods := order.Goods{Produce: count, Meat: count, Vito: count, Dry: count}

	original, err := order.NewOrder(
		kernel.NewUUID(), "Community Fridge", false, goods,
		[]order.LineItem{{Item: "Bread", Comment: "day old ok"}},
		"use the loading dock", suite.slot(0),
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Community Fridge", retrieved.Organization())
	suite.False(retrieved.Advanced())
	suite.Equal(4, retrieved.Goods().Produce.Count())
	suite.Require().Len(retrieved.RetailRescue(), 1)
	suite.Equal("Bread", retrieved.RetailRescue()[0].Item)
	suite.Equal("day old ok", retrieved.RetailRescue()[0].Comment)
	suite.Equal("use the loading dock", retrieved.Comment())
	suite.Equal(order.Pending, retrieved.Status())
	suite.True(original.Pickup().Equal(retrieved.Pickup()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_AdvancedOrder_RoundTripsLineItems() {
	ctx := context.Background()

	itemized, err := order.NewItemizedCategory([]order.LineItem{{Item: "Apples"}, {Item: "Carrots"}})
	suite.Require().NoError(err)
	empty, err := order.NewItemizedCategory(nil)
	suite.Require().NoError(err)
	goods := order.Goods{Produce: itemized, Meat: empty, Vito: empty, Dry: empty}

	original, err := order.NewOrder(
		kernel.NewUUID(), "Hope Kitchen", true, goods, nil, "", suite.slot(0))
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.Advanced())
	suite.Require().Len(retrieved.Goods().Produce.Items(), 2)
	suite.Equal("Apples", retrieved.Goods().Produce.Items()[0].Item)
	suite.Empty(retrieved.Goods().Meat.Items())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Community Fridge", suite.slot(0))
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Approve())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearedComment_Persisted() {
	ctx := context.Background()

	count, err := order.NewCountCategory(2)
	suite.Require().NoError(err)
	goods := order.Goods{Produce: count, Meat: count, Vito: count, Dry: count}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "Community Fridge", false, goods, nil, "ring twice", suite.slot(0))
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	cleared := ""
	suite.Require().NoError(testOrder.ApplyChanges(order.Changes{Comment: &cleared}))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(retrieved.Comment())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	ghost := suite.createTestOrder("Community Fridge", suite.slot(0))

	err := suite.repository.Update(ctx, ghost)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByPickup() {
	ctx := context.Background()
	pickup := suite.slot(0)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	occupant := suite.createTestOrder("Community Fridge", pickup)
	suite.Require().NoError(suite.repository.Add(ctx, occupant))

	// Terminal orders at the same slot do not count as occupants.
	rejected := suite.restoreTestOrder("Other Pantry", order.Rejected, pickup)
	suite.Require().NoError(suite.repository.Add(ctx, rejected))

	otherSlot := suite.createTestOrder("Hope Kitchen", suite.slot(1))
	suite.Require().NoError(suite.repository.Add(ctx, otherSlot))

	active, err := suite.repository.GetActiveByPickup(ctx, pickup)
	suite.Require().NoError(err)

	suite.Require().Len(active, 1)
	suite.Equal(occupant.ID(), active[0].ID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByPickup_EmptySlot_ReturnsEmptySlice() {
	ctx := context.Background()

	active, err := suite.repository.GetActiveByPickup(ctx, suite.slot(0))

	suite.Require().NoError(err)
	suite.Empty(active)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	pending := suite.createTestOrder("Community Fridge", suite.slot(0))
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	released := suite.restoreTestOrder("Other Pantry", order.Released, suite.slot(1))
	suite.Require().NoError(suite.repository.Add(ctx, released))

	completed := suite.restoreTestOrder("Hope Kitchen", order.Completed, suite.slot(2))
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	canceled := suite.restoreTestOrder("Second Harvest", order.Canceled, suite.slot(3))
	suite.Require().NoError(suite.repository.Add(ctx, canceled))

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Len(active, 2)
	for _, o := range active {
		suite.True(o.Status().IsActive())
	}
	suite.tracker.AssertExpectations(suite.T())
}

// slot returns a distinct half-hour pickup timestamp per index.
func (suite *OrderRepositoryIntegrationTestSuite) slot(i int) time.Time {
	return time.Date(2026, time.March, 12, 10, 0, 0, 0, time.UTC).Add(time.Duration(i) * 30 * time.Minute)
}

// createTestOrder creates a basic pending order for the organization.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(organization string, pickup time.Time) *order.Order {
	count, err := order.NewCountCategory(2)
	suite.Require().NoError(err)
	goods := order.Goods{Produce: count, Meat: count, Vito: count, Dry: count}

	testOrder, err := order.NewOrder(kernel.NewUUID(), organization, false, goods, nil, "", pickup)
	suite.Require().NoError(err)
	return testOrder
}

// restoreTestOrder creates an order with the given stored status.
func (suite *OrderRepositoryIntegrationTestSuite) restoreTestOrder(
	organization string, status order.Status, pickup time.Time,
) *order.Order {
	count, err := order.NewCountCategory(2)
	suite.Require().NoError(err)
	goods := order.Goods{Produce: count, Meat: count, Vito: count, Dry: count}

	testOrder, err := order.RestoreOrder(kernel.NewUUID(), organization, false, goods, nil, "", status, pickup)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
