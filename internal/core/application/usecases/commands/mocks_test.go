package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"riderspool/internal/core/application/usecases/commands"
	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/domain/model/office"
	"riderspool/internal/core/domain/model/provider"
	"riderspool/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInterviewRepository struct{ mock.Mock }

func (m *MockInterviewRepository) Add(ctx context.Context, i *interview.Interview) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInterviewRepository) Update(ctx context.Context, i *interview.Interview) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInterviewRepository) Get(ctx context.Context, id kernel.UUID) (*interview.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interview.Interview), args.Error(1)
}

func (m *MockInterviewRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*interview.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interview.Interview), args.Error(1)
}

type MockFeedbackRepository struct{ mock.Mock }

func (m *MockFeedbackRepository) Add(ctx context.Context, f *interview.Feedback) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFeedbackRepository) ExistsForInterview(ctx context.Context, interviewID kernel.UUID) (bool, error) {
	args := m.Called(ctx, interviewID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) GetAllForProvider(ctx context.Context, providerID kernel.UUID) ([]*interview.Feedback, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*interview.Feedback), args.Error(1)
}

type MockOfficeLocationRepository struct{ mock.Mock }

func (m *MockOfficeLocationRepository) Add(ctx context.Context, l *office.OfficeLocation) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockOfficeLocationRepository) Update(ctx context.Context, l *office.OfficeLocation) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockOfficeLocationRepository) Get(ctx context.Context, id kernel.UUID) (*office.OfficeLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*office.OfficeLocation), args.Error(1)
}

type MockProviderRepository struct{ mock.Mock }

func (m *MockProviderRepository) Add(ctx context.Context, p *provider.Provider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProviderRepository) Update(ctx context.Context, p *provider.Provider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProviderRepository) Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*provider.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Provider), args.Error(1)
}

// MockUoW satisfies every command unit of work interface so each test can
// wire only the repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) InterviewRepository() ports.InterviewRepository {
	args := m.Called()
	return args.Get(0).(ports.InterviewRepository)
}

func (m *MockUoW) FeedbackRepository() ports.FeedbackRepository {
	args := m.Called()
	return args.Get(0).(ports.FeedbackRepository)
}

func (m *MockUoW) OfficeLocationRepository() ports.OfficeLocationRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeLocationRepository)
}

func (m *MockUoW) ProviderRepository() ports.ProviderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProviderRepository)
}

type MockInterviewUoWFactory struct{ mock.Mock }

func (m *MockInterviewUoWFactory) Create() commands.InterviewUoW {
	args := m.Called()
	return args.Get(0).(commands.InterviewUoW)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockCompletionUoWFactory struct{ mock.Mock }

func (m *MockCompletionUoWFactory) Create() commands.CompletionUoW {
	args := m.Called()
	return args.Get(0).(commands.CompletionUoW)
}

type MockFeedbackUoWFactory struct{ mock.Mock }

func (m *MockFeedbackUoWFactory) Create() commands.FeedbackUoW {
	args := m.Called()
	return args.Get(0).(commands.FeedbackUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testActor(t *testing.T, id kernel.UUID, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func testSchedule(t *testing.T, daysAhead int) kernel.Schedule {
	t.Helper()
	timeOfDay, err := kernel.NewTimeOfDay(14, 0)
	require.NoError(t, err)
	schedule, err := kernel.NewSchedule(time.Now().UTC().AddDate(0, 0, daysAhead), timeOfDay)
	require.NoError(t, err)
	return schedule
}

func testInterview(t *testing.T, employerID, providerID kernel.UUID, status interview.Status) *interview.Interview {
	t.Helper()
	i, err := interview.NewInterview(kernel.NewUUID(), employerID, providerID, testSchedule(t, 5), nil, "")
	require.NoError(t, err)
	switch status {
	case interview.StatusPending:
	case interview.StatusConfirmed:
		require.NoError(t, i.Confirm())
	case interview.StatusCompleted:
		require.NoError(t, i.Confirm())
		require.NoError(t, i.Complete())
	case interview.StatusCancelled:
		require.NoError(t, i.Cancel("test cancellation"))
	default:
		t.Fatalf("unsupported status %s", status)
	}
	return i
}

func testProvider(t *testing.T, id kernel.UUID) *provider.Provider {
	t.Helper()
	p, err := provider.NewProvider(id, "Juma Otieno", "boda_rider")
	require.NoError(t, err)
	return p
}
