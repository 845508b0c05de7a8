package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using a PostgreSQL container.
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(category order.Category) *order.Order {
	phone, err := kernel.NewPhone("9876543210")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), "Acme Traders", phone, category, "Morinda")
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) newLine(qty int, price string, rate string) order.Line {
	unitPrice, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	taxRate, err := order.TaxRateFromString(rate)
	suite.Require().NoError(err)

	line, err := order.NewLine("Chair", "Standard", "Teak", qty, unitPrice, taxRate, "1 year")
	suite.Require().NoError(err)
	return line
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsTheAggregate() {
	ctx := context.Background()

	aggregate := suite.newOrder(order.CategoryB2C)
	suite.Require().NoError(aggregate.SetBillingAddress("12 Mall Road, Ludhiana"))
	aggregate.SetSameAddress(true)
	suite.Require().NoError(aggregate.AddLine(suite.newLine(2, "1000", "18")))
	suite.Require().NoError(aggregate.AddLine(suite.newLine(1, "5000", "5")))

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(aggregate))
	suite.Equal("Acme Traders", restored.CustomerName())
	suite.Equal("12 Mall Road, Ludhiana", restored.ShippingAddress())
	suite.True(restored.SameAddress())
	suite.Len(restored.Lines(), 2)
	suite.Equal(2, restored.Lines()[0].Qty())
	suite.True(restored.Totals().Total.Equal(aggregate.Totals().Total))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsClearedFields() {
	ctx := context.Background()

	aggregate := suite.newOrder(order.CategoryB2G)
	suite.Require().NoError(aggregate.SetGemOrderNumber("GEM-2026-001"))
	suite.Require().NoError(aggregate.SetDeliveryDate(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.SetCategory(order.CategoryB2C))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.CategoryB2C, restored.Category())
	suite.Empty(restored.GemOrderNumber(), "blanked GeM number must not survive the update")
	suite.Nil(restored.DeliveryDate())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLines() {
	ctx := context.Background()

	aggregate := suite.newOrder(order.CategoryB2C)
	suite.Require().NoError(aggregate.AddLine(suite.newLine(2, "1000", "18")))
	suite.Require().NoError(aggregate.AddLine(suite.newLine(3, "200", "5")))
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.RemoveLine(0))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.Lines(), 1)
	suite.Equal(3, restored.Lines()[0].Qty())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	aggregate := suite.newOrder(order.CategoryB2C)
	suite.Require().ErrorIs(suite.repository.Update(ctx, aggregate), gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsObjectNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUndelivered_ExcludesDeliveredOrders() {
	ctx := context.Background()
	now := time.Now().UTC()

	pending := suite.newOrder(order.CategoryB2C)
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	delivered := suite.newOrder(order.CategoryB2C)
	suite.Require().NoError(delivered.SetBillingStatus(order.BillingComplete))
	suite.Require().NoError(delivered.RequestDispatchChange(order.Delivered, order.StampReceived, now))
	suite.Require().NoError(delivered.ConfirmDispatchChange())
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	result, err := suite.repository.GetAllUndelivered(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].IsEqual(pending))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllWithPendingDispatch_RoundTripsTheRequest() {
	ctx := context.Background()
	requestedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	quiet := suite.newOrder(order.CategoryB2C)
	suite.Require().NoError(suite.repository.Add(ctx, quiet))

	waiting := suite.newOrder(order.CategoryB2C)
	suite.Require().NoError(waiting.RequestDispatchChange(order.HoldByCustomer, order.StampUnset, requestedAt))
	suite.Require().NoError(suite.repository.Add(ctx, waiting))

	result, err := suite.repository.GetAllWithPendingDispatch(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].IsEqual(waiting))

	pending := result[0].PendingDispatch()
	suite.Require().NotNil(pending)
	suite.Equal(order.HoldByCustomer, pending.Target)
	suite.True(pending.RequestedAt.Equal(requestedAt))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
