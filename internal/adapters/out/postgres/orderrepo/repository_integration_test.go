package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"pedido/internal/adapters/out/postgres/orderrepo"
	"pedido/internal/core/domain/model/kernel"
	"pedido/internal/core/domain/model/order"
	"pedido/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items CASCADE").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsIdentityAndPersists() {
	ctx := context.Background()

	// Create valid order without identity
	testOrder := suite.createTestOrder("customer-1")
	suite.True(testOrder.ID().IsZero())

	// Identity is minted inside Add, so match any UUID
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), testOrder).Once()

	// Add order to repository
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify identity was assigned to the aggregate and its items
	suite.False(testOrder.ID().IsZero())
	for _, item := range testOrder.Items() {
		suite.False(item.ID().IsZero())
	}

	// Verify order was persisted with its items
	suite.assertOrderCount(1)
	suite.assertItemCount(2)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_InvalidOrder_BusinessRules() {
	testCases := []struct {
		name     string
		setup    func() (*order.Order, error)
		expected string
	}{
		{
			name: "missing customer",
			setup: func() (*order.Order, error) {
				return order.NewOrder("", nil)
			},
			expected: "customerID",
		},
		{
			name: "invalid item quantity",
			setup: func() (*order.Order, error) {
				item, err := order.NewItem(7, 0, 10.0)
				if err != nil {
					return nil, err
				}
				return order.NewOrder("customer-1", []*order.Item{item})
			},
			expected: "quantity",
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			// Create invalid order
			invalidOrder, err := tc.setup()
			if err != nil {
				// Constructor validation failed as expected
				suite.Contains(err.Error(), tc.expected)
				return
			}

			// Try to add invalid order
			err = suite.repository.Add(ctx, invalidOrder)
			suite.Require().Error(err)
			suite.Contains(err.Error(), tc.expected)

			// Verify no order was persisted
			suite.assertOrderCount(0)
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	// Create and add order
	originalOrder := suite.createTestOrder("customer-42")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), originalOrder).Once()

	err := suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	// Retrieve order
	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	// Verify order details
	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("customer-42", retrievedOrder.CustomerID())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.InDelta(25.0, retrievedOrder.TotalAmount(), 0.001)
	suite.Require().Len(retrievedOrder.Items(), 2)
	suite.Equal(int64(1), retrievedOrder.Items()[0].ProductID())
	suite.Equal(int64(2), retrievedOrder.Items()[1].ProductID())

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_PreservesItemOrder() {
	ctx := context.Background()

	// Items carry the request order through their position column
	items := suite.createTestItems([]int64{30, 10, 20})
	testOrder, err := order.NewOrder("customer-1", items)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().Len(retrievedOrder.Items(), 3)
	suite.Equal(int64(30), retrievedOrder.Items()[0].ProductID())
	suite.Equal(int64(10), retrievedOrder.Items()[1].ProductID())
	suite.Equal(int64(20), retrievedOrder.Items()[2].ProductID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Try to get non-existent order
	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	// Verify error and result
	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsAllOrders() {
	ctx := context.Background()

	// Add two orders for different customers
	first := suite.createTestOrder("customer-1")
	second := suite.createTestOrder("customer-2")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	// Retrieve all orders
	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	customers := []string{orders[0].CustomerID(), orders[1].CustomerID()}
	suite.Contains(customers, "customer-1")
	suite.Contains(customers, "customer-2")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_NoOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Empty(orders)
	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with zero UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	// Create initial order
	initialOrder := suite.createTestOrder("customer-1")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), initialOrder).Once()
	err := suite.repository.Add(ctx, initialOrder)
	suite.Require().NoError(err)

	// Simulate concurrent reads
	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	// Collect results
	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with two priced items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(customerID string) *order.Order {
	firstItem, err := order.NewItem(1, 2, 10.0)
	suite.Require().NoError(err)
	secondItem, err := order.NewItem(2, 1, 5.0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(customerID, []*order.Item{firstItem, secondItem})
	suite.Require().NoError(err)
	return testOrder
}

// createTestItems creates one single-unit item per product identifier.
func (suite *OrderRepositoryIntegrationTestSuite) createTestItems(productIDs []int64) []*order.Item {
	items := make([]*order.Item, len(productIDs))
	for i, productID := range productIDs {
		item, err := order.NewItem(productID, 1, 1.0)
		suite.Require().NoError(err)
		items[i] = item
	}
	return items
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of order items in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.ItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
