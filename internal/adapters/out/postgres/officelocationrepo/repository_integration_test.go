package officelocationrepo_test

import (
	"context"
	"testing"
	"time"

	"riderspool/internal/adapters/out/postgres/officelocationrepo"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/domain/model/office"
	"riderspool/internal/pkg/errs"

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

// OfficeLocationRepositoryIntegrationTestSuite provides integration tests
// for OfficeLocationRepository using PostgreSQL containers.
type OfficeLocationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *officelocationrepo.GormOfficeLocationRepository
	tracker    *MockAggregateTracker
}

func (suite *OfficeLocationRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&officelocationrepo.OfficeLocationDTO{}))
}

func (suite *OfficeLocationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE office_locations").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = officelocationrepo.NewGormOfficeLocationRepository(suite.db, suite.tracker)
}

func (suite *OfficeLocationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OfficeLocationRepositoryIntegrationTestSuite) TestAdd_ValidLocation_Success() {
	ctx := context.Background()

	location := suite.createTestLocation("Westlands Hub", "Waiyaki Way", "Nairobi")
	suite.tracker.On("TrackAggregate", location.ID(), location).Once()

	err := suite.repository.Add(ctx, location)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, location.ID())
	suite.Require().NoError(err)
	suite.Equal("Westlands Hub", retrieved.Name())
	suite.Equal("Waiyaki Way", retrieved.Address())
	suite.Equal("Nairobi", retrieved.City())
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OfficeLocationRepositoryIntegrationTestSuite) TestUpdate_Deactivate_Persists() {
	ctx := context.Background()

	location := suite.createTestLocation("Nyali Branch", "Links Road", "Mombasa")
	suite.tracker.On("TrackAggregate", location.ID(), location).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, location))

	location.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, location))

	retrieved, err := suite.repository.Get(ctx, location.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive(), "deactivation must persist the false flag")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OfficeLocationRepositoryIntegrationTestSuite) TestUpdate_NonExistentLocation_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestLocation("Kisumu Office", "Oginga Odinga Street", "Kisumu")

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OfficeLocationRepositoryIntegrationTestSuite) TestGet_NonExistentLocation_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestLocation creates an active office location.
func (suite *OfficeLocationRepositoryIntegrationTestSuite) createTestLocation(
	name string, address string, city string,
) *office.OfficeLocation {
	location, err := office.NewOfficeLocation(kernel.NewUUID(), name, address, city)
	suite.Require().NoError(err)
	return location
}

func TestOfficeLocationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OfficeLocationRepositoryIntegrationTestSuite))
}
