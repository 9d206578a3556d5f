package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "printshop/internal/adapters/out/postgres"
	"printshop/internal/adapters/out/postgres/cartrepo"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/adapters/out/postgres/pdfrequestrepo"
	"printshop/internal/adapters/out/postgres/settingsrepo"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
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
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&pdfrequestrepo.RequestDTO{},
		&cartrepo.CartDTO{}, &cartrepo.CartItemDTO{},
		&settingsrepo.SettingsDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, pdf_requests, cart_items, carts, settings").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(code, userID string) *order.Order {
	item, err := order.NewSubjectItem(kernel.NewUUID(), "Physics Notes", 1, order.SideSingle, 100)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), code, userID,
		[]order.Item{item},
		order.Student{Name: "Asha"}, "", nil)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestRequest(code, userID string) *pdfrequest.Request {
	r, err := pdfrequest.NewRequest(
		kernel.NewUUID(), code, userID,
		"Thesis Draft", "https://blob/thesis.pdf", 2, order.SideSingle)
	suite.Require().NoError(err)
	return r
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder("O1234", "user-1")))
	suite.Require().NoError(uow.PDFRequestRepository().Add(ctx, suite.createTestRequest("REQ1234", "user-1")))
	suite.Require().NoError(uow.SettingsRepository().SetOrderingEnabled(ctx, false))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().GetByCode(ctx, "O1234")
	suite.Require().NoError(err)
	_, err = verify.PDFRequestRepository().GetByCode(ctx, "REQ1234")
	suite.Require().NoError(err)
	enabled, err := verify.SettingsRepository().GetOrderingEnabled(ctx)
	suite.Require().NoError(err)
	suite.False(enabled)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder("O1234", "user-1")))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().GetByCode(ctx, "O1234")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WorkOutsideTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Without Begin, repositories run on the main connection.
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder("O1234", "user-1")))

	restored, err := suite.factory.Create().OrderRepository().GetByCode(ctx, "O1234")
	suite.Require().NoError(err)
	suite.Equal("O1234", restored.Code())
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
