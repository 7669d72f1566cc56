package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// seedOrder persists a pending order with a fixed placement time so ordering
// assertions stay deterministic across test runs.
func seedOrder(
	ctx context.Context,
	repo *orderrepo.GormOrderRepository,
	customerID string,
	status order.Status,
	placedAt time.Time,
) (*order.Order, error) {
	price, err := kernel.NewMoneyFromString("100.00")
	if err != nil {
		return nil, err
	}

	item, err := order.NewItem("PROD-001", "Laptop", 2, price)
	if err != nil {
		return nil, err
	}

	seeded, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, kernel.GenerateOrderNumber(placedAt),
		status, []order.Item{item}, "seeded", placedAt, placedAt,
	)
	if err != nil {
		return nil, err
	}

	return seeded, repo.Save(ctx, seeded)
}

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewGetAllOrdersQuery(0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)
	suite.Equal(0, result.Page)
	suite.Equal(20, result.Size)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_PaginatesMostRecentFirst() {
	ctx := context.Background()

	first, err := seedOrder(ctx, suite.orderRepo, "CUST-001", order.Pending,
		time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	second, err := seedOrder(ctx, suite.orderRepo, "CUST-002", order.Pending,
		time.Date(2025, 1, 11, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	third, err := seedOrder(ctx, suite.orderRepo, "CUST-003", order.Pending,
		time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	query, err := queries.NewGetAllOrdersQuery(0, 2)
	suite.Require().NoError(err)

	pageOne, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(3), pageOne.Total)
	suite.Require().Len(pageOne.Orders, 2)
	suite.True(pageOne.Orders[0].OrderID.IsEqual(third.ID()))
	suite.True(pageOne.Orders[1].OrderID.IsEqual(second.ID()))

	query, err = queries.NewGetAllOrdersQuery(1, 2)
	suite.Require().NoError(err)

	pageTwo, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(3), pageTwo.Total)
	suite.Require().Len(pageTwo.Orders, 1)
	suite.True(pageTwo.Orders[0].OrderID.IsEqual(first.ID()))
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_AttachesItemLines() {
	ctx := context.Background()

	seeded, err := seedOrder(ctx, suite.orderRepo, "CUST-001", order.Pending,
		time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	query, err := queries.NewGetAllOrdersQuery(0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	view := result.Orders[0]
	suite.Equal("CUST-001", view.CustomerID)
	suite.Equal(seeded.Number().String(), view.OrderNumber)
	suite.Equal("PENDING", view.Status)
	suite.True(view.TotalAmount.Equal(seeded.TotalAmount().Amount()))
	suite.Require().Len(view.Items, 1)
	suite.Equal("PROD-001", view.Items[0].ProductCode)
	suite.Equal(2, view.Items[0].Quantity)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetAllOrdersQuery constructor")
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
