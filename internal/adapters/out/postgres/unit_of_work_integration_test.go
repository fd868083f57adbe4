package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "pedido/internal/adapters/out/postgres"
	"pedido/internal/adapters/out/postgres/orderrepo"
	"pedido/internal/core/domain/model/order"
	"pedido/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to the repository
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderWithItemsTransaction verifies the order and its items
// commit as one unit within a single transaction boundary.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderWithItemsTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder(suite.T())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order and items persist after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
	suite.Require().Len(retrievedOrder.Items(), 2)
	suite.InDelta(testOrder.TotalAmount(), retrievedOrder.TotalAmount(), 0.001)
	suite.Equal(order.Pending, retrievedOrder.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards the order
// and its items together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder(suite.T())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify neither order nor items exist after rollback
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Count(&itemCount).Error)
	suite.Zero(itemCount, "Items should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test orders
	order1 := createTestOrder(suite.T())
	order2 := createTestOrder(suite.T())

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different orders in each transaction
	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder(suite.T())

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_PlacementWorkflow runs the full placement shape: begin,
// add the priced order with its items, commit, then read it back.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PlacementWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Begin transaction for the placement
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Persist the priced order
	testOrder := createTestOrder(suite.T())
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Commit the placement
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Equal("customer-1", retrievedOrder.CustomerID())
	suite.Require().Len(retrievedOrder.Items(), 2)
	suite.InDelta(25.0, retrievedOrder.TotalAmount(), 0.001)
}

// createTestOrder creates a valid priced order for testing purposes.
func createTestOrder(t *testing.T) *order.Order {
	t.Helper()

	firstItem, err := order.NewItem(1, 2, 10.0)
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	secondItem, err := order.NewItem(2, 1, 5.0)
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	testOrder, err := order.NewOrder("customer-1", []*order.Item{firstItem, secondItem})
	if err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
