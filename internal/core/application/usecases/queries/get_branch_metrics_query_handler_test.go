package queries_test

import (
	"context"
	"testing"
	"time"

	"laundryops/internal/adapters/out/postgres/orderrepo"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedTime = time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)

type GetBranchMetricsQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetBranchMetricsQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
	mainStoreID kernel.UUID
	satelliteID kernel.UUID
}

func (suite *GetBranchMetricsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.PaymentDTO{},
		&orderrepo.ClassificationOverrideDTO{},
		&orderrepo.TagSequenceDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetBranchMetricsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.mainStoreID = kernel.NewUUID()
	suite.satelliteID = kernel.NewUUID()
}

func (suite *GetBranchMetricsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetBranchMetricsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetBranchMetricsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroFilledDepths() {
	query, err := queries.NewGetBranchMetricsQuery(suite.mainStoreID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.mainStoreID, result.BranchID)
	suite.Equal(map[string]int{
		"queued":        0,
		"washing":       0,
		"drying":        0,
		"ironing":       0,
		"quality_check": 0,
		"packaging":     0,
	}, result.StageDepths)
	suite.Zero(result.PendingRouting)
	suite.Zero(result.InTransit)
	suite.Zero(result.ReadyForReturn)
}

func (suite *GetBranchMetricsQueryHandlerTestSuite) TestHandle_CountsWorkstationQueueDepths() {
	suite.seedOrderAtStage(suite.mainStoreID, "ORD-KL01-20260402-0001", order.Washing)
	suite.seedOrderAtStage(suite.mainStoreID, "ORD-KL01-20260402-0002", order.Washing)
	suite.seedOrderAtStage(suite.mainStoreID, "ORD-KL01-20260402-0003", order.Drying)
	suite.seedOrderAtStage(suite.mainStoreID, "ORD-KL01-20260402-0004", order.Queued)

	// Orders worked at another branch stay out of this branch's depths.
	otherBranchID := kernel.NewUUID()
	suite.seedOrderAtStage(otherBranchID, "ORD-PJ02-20260402-0001", order.Washing)

	query, err := queries.NewGetBranchMetricsQuery(suite.mainStoreID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(map[string]int{
		"queued":        1,
		"washing":       2,
		"drying":        1,
		"ironing":       0,
		"quality_check": 0,
		"packaging":     0,
	}, result.StageDepths)
}

func (suite *GetBranchMetricsQueryHandlerTestSuite) TestHandle_CountsTransferLegsForOwningBranch() {
	suite.seedPendingTransferOrder(suite.satelliteID, suite.mainStoreID, "ORD-SJ03-20260402-0001")
	suite.seedPendingTransferOrder(suite.satelliteID, suite.mainStoreID, "ORD-SJ03-20260402-0002")
	suite.seedInTransitOrder(suite.satelliteID, suite.mainStoreID, "ORD-SJ03-20260402-0003")

	query, err := queries.NewGetBranchMetricsQuery(suite.satelliteID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(2, result.PendingRouting)
	suite.Equal(1, result.InTransit)
	suite.Zero(result.ReadyForReturn)
	for stage, depth := range result.StageDepths {
		suite.Zero(depth, "stage %s should be empty at the satellite", stage)
	}
}

func (suite *GetBranchMetricsQueryHandlerTestSuite) TestHandle_CountsReadyForReturnForProcessingBranch() {
	suite.seedReadyForReturnOrder(suite.satelliteID, suite.mainStoreID, "ORD-SJ03-20260402-0004")
	suite.seedPendingTransferOrder(suite.satelliteID, suite.mainStoreID, "ORD-SJ03-20260402-0005")

	query, err := queries.NewGetBranchMetricsQuery(suite.mainStoreID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(1, result.ReadyForReturn)
	// The satellite's waiting orders belong to the satellite's counters.
	suite.Zero(result.PendingRouting)
	suite.Zero(result.InTransit)
}

// newBranchOrder creates a freshly taken-in order owned by the given branch.
func (suite *GetBranchMetricsQueryHandlerTestSuite) newBranchOrder(
	owningBranchID kernel.UUID,
	tagNumber string,
) *order.Order {
	phone, err := kernel.NewPhone("+60198765432")
	suite.Require().NoError(err)

	created, err := order.NewOrder(
		kernel.NewUUID(),
		tagNumber,
		owningBranchID,
		"Mei Ling Tan",
		&phone,
		3,
		kernel.MustMoneyFromString("45.00"),
		seedTime.Add(48*time.Hour),
		seedTime,
	)
	suite.Require().NoError(err)
	return created
}

// seedOrderAtStage persists an order worked at its owning branch, advanced
// through the cleaning pipeline up to the given workstation stage.
func (suite *GetBranchMetricsQueryHandlerTestSuite) seedOrderAtStage(
	branchID kernel.UUID,
	tagNumber string,
	stage order.Status,
) {
	created := suite.newBranchOrder(branchID, tagNumber)
	suite.Require().NoError(created.RouteToWorkstation(branchID, false, seedTime))
	suite.Require().NoError(created.ChangeStatus(order.Queued, seedTime))

	pipeline := []order.Status{
		order.Washing, order.Drying, order.Ironing, order.QualityCheck, order.Packaging,
	}
	for _, next := range pipeline {
		if created.Status() == stage {
			break
		}
		suite.Require().NoError(created.ChangeStatus(next, seedTime))
	}
	suite.Require().Equal(stage, created.Status())

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), created))
}

// seedPendingTransferOrder persists an order waiting at its satellite for the
// next transfer run to the main store.
func (suite *GetBranchMetricsQueryHandlerTestSuite) seedPendingTransferOrder(
	owningBranchID kernel.UUID,
	mainStoreID kernel.UUID,
	tagNumber string,
) *order.Order {
	created := suite.newBranchOrder(owningBranchID, tagNumber)
	suite.Require().NoError(created.RouteToWorkstation(mainStoreID, true, seedTime))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), created))
	return created
}

// seedInTransitOrder persists an order riding a transfer run to the main store.
func (suite *GetBranchMetricsQueryHandlerTestSuite) seedInTransitOrder(
	owningBranchID kernel.UUID,
	mainStoreID kernel.UUID,
	tagNumber string,
) {
	created := suite.newBranchOrder(owningBranchID, tagNumber)
	suite.Require().NoError(created.RouteToWorkstation(mainStoreID, true, seedTime))
	suite.Require().NoError(created.MarkInTransit())
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), created))
}

// seedReadyForReturnOrder persists a transferred order the main store has
// finished cleaning, now waiting for the return leg.
func (suite *GetBranchMetricsQueryHandlerTestSuite) seedReadyForReturnOrder(
	owningBranchID kernel.UUID,
	mainStoreID kernel.UUID,
	tagNumber string,
) {
	created := suite.newBranchOrder(owningBranchID, tagNumber)
	suite.Require().NoError(created.RouteToWorkstation(mainStoreID, true, seedTime))
	suite.Require().NoError(created.MarkInTransit())
	suite.Require().NoError(created.MarkReceived(seedTime))
	suite.Require().NoError(created.AssignStage(order.Queued, nil))
	suite.Require().NoError(created.ChangeStatus(order.Queued, seedTime))

	pipeline := []order.Status{
		order.Washing, order.Drying, order.Ironing, order.QualityCheck, order.Packaging,
	}
	for _, next := range pipeline {
		suite.Require().NoError(created.ChangeStatus(next, seedTime))
	}
	suite.Require().NoError(created.CompleteProcessing(seedTime, branch.DefaultSortingWindow))

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), created))
}

func TestGetBranchMetricsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetBranchMetricsQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker; query tests never commit through a
// unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
