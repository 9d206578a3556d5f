package queries_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/cartrepo"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/adapters/out/postgres/pdfrequestrepo"
	"printshop/internal/adapters/out/postgres/settingsrepo"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/cart"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/pdfrequest"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracker dependency in query seeding.
type noopTracker struct {
	mock.Mock
}

func (m *noopTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// QueriesIntegrationTestSuite exercises the read-side handlers against a real
// PostgreSQL database seeded through the write-side repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	tracker   *noopTracker
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&pdfrequestrepo.RequestDTO{},
		&cartrepo.CartDTO{}, &cartrepo.CartItemDTO{},
		&settingsrepo.SettingsDTO{},
	))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, pdf_requests, cart_items, carts, settings").Error
	suite.Require().NoError(err)

	suite.tracker = new(noopTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) seedOrder(code, userID string) *order.Order {
	subject, err := order.NewSubjectItem(kernel.NewUUID(), "Physics Notes", 2, order.SideSingle, 100)
	suite.Require().NoError(err)
	custom, err := order.NewCustomItem("Thesis Draft", "https://blob/thesis.pdf", 1, order.SideDouble, nil)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), code, userID,
		[]order.Item{subject, custom},
		order.Student{Name: "Asha", CollegeID: "2100031234", Phone: "9999999999"},
		"Library Block", nil)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.Require().NoError(repo.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) seedRequest(code, userID string) *pdfrequest.Request {
	r, err := pdfrequest.NewRequest(
		kernel.NewUUID(), code, userID,
		"Thesis Draft", "https://blob/thesis.pdf", 2, order.SideSingle)
	suite.Require().NoError(err)

	repo := pdfrequestrepo.NewGormPDFRequestRepository(suite.db, suite.tracker)
	suite.Require().NoError(repo.Add(context.Background(), r))
	return r
}

func (suite *QueriesIntegrationTestSuite) TestGetMyOrders_ScopedAndMapped() {
	ctx := context.Background()
	suite.seedOrder("O1111", "user-1")
	suite.seedOrder("O2222", "user-2")

	handler := queries.NewGetMyOrdersQueryHandler(suite.db)
	query, err := queries.NewGetMyOrdersQuery("user-1")
	suite.Require().NoError(err)

	orders, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)

	resp := orders[0]
	suite.Equal("O1111", resp.Code)
	suite.Equal("pending_price", resp.Status)
	suite.InDelta(200.0, resp.Amount, 0.001)
	suite.Require().Len(resp.Items, 2)
	suite.Equal("subject", resp.Items[0].Kind)
	suite.InDelta(200.0, resp.Items[0].Subtotal, 0.001)
	suite.Equal("custom", resp.Items[1].Kind)
	suite.True(resp.Items[1].AwaitsPrice)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_OwnershipEnforced() {
	ctx := context.Background()
	suite.seedOrder("O1111", "user-1")
	handler := queries.NewGetOrderQueryHandler(suite.db)

	owner, err := queries.NewGetOrderQuery("user-1", "O1111", false)
	suite.Require().NoError(err)
	resp, err := handler.Handle(ctx, owner)
	suite.Require().NoError(err)
	suite.Equal("O1111", resp.Code)

	intruder, err := queries.NewGetOrderQuery("intruder", "O1111", false)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, intruder)
	suite.Require().ErrorIs(err, errs.ErrNotAuthorized)

	admin, err := queries.NewGetOrderQuery("admin-1", "O1111", true)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, admin)
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_NotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, err := queries.NewGetOrderQuery("user-1", "O9999", false)
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetAllOrders_ReturnsEverything() {
	ctx := context.Background()
	suite.seedOrder("O1111", "user-1")
	suite.seedOrder("O2222", "user-2")

	handler := queries.NewGetAllOrdersQueryHandler(suite.db)
	orders, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.Len(orders, 2)
}

func (suite *QueriesIntegrationTestSuite) TestGetMyPDFRequests_Scoped() {
	ctx := context.Background()
	seeded := suite.seedRequest("REQ1111", "user-1")
	suite.seedRequest("REQ2222", "user-2")

	handler := queries.NewGetMyPDFRequestsQueryHandler(suite.db)
	query, err := queries.NewGetMyPDFRequestsQuery("user-1")
	suite.Require().NoError(err)

	requests, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(requests, 1)
	suite.Equal(seeded.Code(), requests[0].Code)
	suite.Equal("pending", requests[0].Status)
	suite.Nil(requests[0].Price)
}

func (suite *QueriesIntegrationTestSuite) TestGetAllPDFRequests_ReturnsEverything() {
	ctx := context.Background()
	suite.seedRequest("REQ1111", "user-1")
	suite.seedRequest("REQ2222", "user-2")

	handler := queries.NewGetAllPDFRequestsQueryHandler(suite.db)
	requests, err := handler.Handle(ctx, queries.NewGetAllPDFRequestsQuery())
	suite.Require().NoError(err)
	suite.Len(requests, 2)
}

func (suite *QueriesIntegrationTestSuite) TestGetCart_EmptyWhenMissing() {
	handler := queries.NewGetCartQueryHandler(suite.db)
	query, err := queries.NewGetCartQuery("user-1")
	suite.Require().NoError(err)

	resp, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("user-1", resp.UserID)
	suite.Empty(resp.Items)
	suite.Zero(resp.Total)
}

func (suite *QueriesIntegrationTestSuite) TestGetCart_TotalsPricedLines() {
	ctx := context.Background()

	c, err := cart.NewCart(kernel.NewUUID(), "user-1")
	suite.Require().NoError(err)
	subject, err := order.NewSubjectItem(kernel.NewUUID(), "Physics Notes", 2, order.SideSingle, 100)
	suite.Require().NoError(err)
	suite.Require().NoError(c.AddItem(subject))
	custom, err := order.NewCustomItem("Thesis Draft", "https://blob/thesis.pdf", 1, order.SideDouble, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(c.AddItem(custom))

	repo := cartrepo.NewGormCartRepository(suite.db, suite.tracker)
	suite.Require().NoError(repo.Add(ctx, c))

	handler := queries.NewGetCartQueryHandler(suite.db)
	query, err := queries.NewGetCartQuery("user-1")
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(resp.Items, 2)
	suite.InDelta(200.0, resp.Total, 0.001)
	suite.True(resp.Items[1].AwaitsPrice)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderingEnabled_DefaultsTrue() {
	handler := queries.NewGetOrderingEnabledQueryHandler(suite.db)

	enabled, err := handler.Handle(context.Background(), queries.NewGetOrderingEnabledQuery())
	suite.Require().NoError(err)
	suite.True(enabled)

	repo := settingsrepo.NewGormSettingsRepository(suite.db)
	suite.Require().NoError(repo.SetOrderingEnabled(context.Background(), false))

	enabled, err = handler.Handle(context.Background(), queries.NewGetOrderingEnabledQuery())
	suite.Require().NoError(err)
	suite.False(enabled)
}

func TestQueriesIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
