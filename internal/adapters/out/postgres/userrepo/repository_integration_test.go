package userrepo_test

import (
	"context"
	"testing"
	"time"

	"appraise/internal/adapters/out/postgres/userrepo"
	"appraise/internal/core/domain/model/user"
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

// UserRepositoryIntegrationTestSuite provides integration tests for UserRepository
// using PostgreSQL containers to verify database persistence behavior.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_NewUser_AssignsID() {
	ctx := context.Background()

	testUser, err := user.NewUser(100, user.Client)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testUser).Once()

	err = suite.repository.Add(ctx, testUser)
	suite.Require().NoError(err)
	suite.NotZero(testUser.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateTelegramID_Fails() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()

	first, err := user.NewUser(100, user.Client)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate, err := user.NewUser(100, user.Appraiser)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err, "telegram_id uniqueness should reject a duplicate registration")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByTelegramID_ExistingUser_ReturnsUser() {
	ctx := context.Background()

	testUser, err := user.NewUser(500, user.Appraiser)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testUser).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testUser))

	retrieved, err := suite.repository.GetByTelegramID(ctx, 500)
	suite.Require().NoError(err)
	suite.Equal(testUser.ID(), retrieved.ID())
	suite.Equal(int64(500), retrieved.TelegramID())
	suite.Equal(user.Appraiser, retrieved.Role())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByTelegramID_UnknownUser_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByTelegramID(ctx, 999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_PromotionPersists() {
	ctx := context.Background()

	testUser, err := user.NewUser(500, user.Client)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testUser).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testUser))

	suite.Require().True(testUser.PromoteToAppraiser())
	suite.Require().NoError(suite.repository.Update(ctx, testUser))

	retrieved, err := suite.repository.Get(ctx, testUser.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsAppraiser())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_NonExistentUser_ReturnsError() {
	ctx := context.Background()

	missing, err := user.RestoreUser(999999, 600, user.Client, time.Now(), time.Now())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
