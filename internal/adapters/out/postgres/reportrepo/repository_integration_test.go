package reportrepo_test

import (
	"bytes"
	"context"
	"math/rand"
	"testing"
	"time"

	"appraise/internal/adapters/out/postgres/reportrepo"
	"appraise/internal/core/domain/model/report"
	"appraise/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// ReportRepositoryIntegrationTestSuite provides integration tests for ReportRepository
// using PostgreSQL containers to verify binary content persistence.
type ReportRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reportrepo.GormReportRepository
	tracker    *MockAggregateTracker
}

func (suite *ReportRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&reportrepo.ReportDTO{}))
}

func (suite *ReportRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE reports").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = reportrepo.NewGormReportRepository(suite.db, suite.tracker)
}

func (suite *ReportRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReportRepositoryIntegrationTestSuite) TestAdd_NewReport_AssignsID() {
	ctx := context.Background()

	testReport, err := report.NewReport(1, []byte("%PDF-1.4 appraisal"))
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testReport).Once()

	err = suite.repository.Add(ctx, testReport)
	suite.Require().NoError(err)
	suite.NotZero(testReport.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReportRepositoryIntegrationTestSuite) TestAdd_SecondReportForOrder_Fails() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()

	first, err := report.NewReport(1, []byte("first"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := report.NewReport(1, []byte("second"))
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err, "order_id uniqueness should reject a second report")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReportRepositoryIntegrationTestSuite) TestGet_RoundTripsLargeContent() {
	ctx := context.Background()

	content := make([]byte, 150*1024)
	rng := rand.New(rand.NewSource(42))
	_, err := rng.Read(content)
	suite.Require().NoError(err)

	testReport, err := report.NewReport(1, content)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testReport).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testReport))

	retrieved, err := suite.repository.Get(ctx, testReport.ID())
	suite.Require().NoError(err)
	suite.True(bytes.Equal(content, retrieved.PdfFile()), "content must survive byte for byte")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReportRepositoryIntegrationTestSuite) TestGetByOrderID_ExistingReport_ReturnsReport() {
	ctx := context.Background()

	testReport, err := report.NewReport(7, []byte("%PDF-1.4"))
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testReport).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testReport))

	retrieved, err := suite.repository.GetByOrderID(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(testReport.ID(), retrieved.ID())
	suite.Equal(int64(7), retrieved.OrderID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReportRepositoryIntegrationTestSuite) TestGetByOrderID_NoReport_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByOrderID(ctx, 404)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ReportRepositoryIntegrationTestSuite) TestGet_NonExistentReport_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 424242)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestReportRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ReportRepositoryIntegrationTestSuite))
}
