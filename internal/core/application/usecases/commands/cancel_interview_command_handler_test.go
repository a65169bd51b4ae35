package commands_test

import (
	"testing"

	"riderspool/internal/core/application/usecases/commands"
	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/ports"
	"riderspool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelInterviewCommandHandler_Handle_EmployerCancels(t *testing.T) {
	ctx := t.Context()
	employerID := kernel.NewUUID()
	providerID := kernel.NewUUID()
	employer := testActor(t, employerID, actor.RoleEmployer)
	target := testInterview(t, employerID, providerID, interview.StatusPending)

	cmd, err := commands.NewCancelInterviewCommand(target.ID(), employer, "position filled")
	require.NoError(t, err)

	repo := new(MockInterviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InterviewRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// the provider, not the cancelling employer, gets notified
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Event == ports.EventInterviewCancelled && n.RecipientID.IsEqual(providerID)
	})).Return(nil).Once()

	factory := new(MockInterviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelInterviewCommandHandler(factory, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, interview.StatusCancelled, target.Status())
	assert.Equal(t, "position filled", target.CancellationReason())
	notifier.AssertExpectations(t)
}

func TestCancelInterviewCommandHandler_Handle_ProviderCancels(t *testing.T) {
	ctx := t.Context()
	employerID := kernel.NewUUID()
	providerID := kernel.NewUUID()
	rider := testActor(t, providerID, actor.RoleProvider)
	target := testInterview(t, employerID, providerID, interview.StatusConfirmed)

	cmd, err := commands.NewCancelInterviewCommand(target.ID(), rider, "found another job")
	require.NoError(t, err)

	repo := new(MockInterviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InterviewRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.RecipientID.IsEqual(employerID)
	})).Return(nil).Once()

	factory := new(MockInterviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelInterviewCommandHandler(factory, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	notifier.AssertExpectations(t)
}

func TestCancelInterviewCommandHandler_Handle_CompletedRejects(t *testing.T) {
	ctx := t.Context()
	employerID := kernel.NewUUID()
	employer := testActor(t, employerID, actor.RoleEmployer)
	target := testInterview(t, employerID, kernel.NewUUID(), interview.StatusCompleted)

	cmd, err := commands.NewCancelInterviewCommand(target.ID(), employer, "changed my mind")
	require.NoError(t, err)

	repo := new(MockInterviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InterviewRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInterviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelInterviewCommandHandler(factory, new(MockNotifier), testLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, interview.StatusCompleted, target.Status())
}

func TestCancelInterviewCommandHandler_Handle_OutsiderDenied(t *testing.T) {
	ctx := t.Context()
	target := testInterview(t, kernel.NewUUID(), kernel.NewUUID(), interview.StatusPending)
	outsider := testActor(t, kernel.NewUUID(), actor.RoleEmployer)

	cmd, err := commands.NewCancelInterviewCommand(target.ID(), outsider, "not mine")
	require.NoError(t, err)

	repo := new(MockInterviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InterviewRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInterviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelInterviewCommandHandler(factory, new(MockNotifier), testLogger())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrPermissionDenied)
}

func TestNewCancelInterviewCommand(t *testing.T) {
	t.Run("should require a reason", func(t *testing.T) {
		employer := testActor(t, kernel.NewUUID(), actor.RoleEmployer)

		_, err := commands.NewCancelInterviewCommand(kernel.NewUUID(), employer, "")

		require.ErrorIs(t, err, commands.ErrCancellationReasonIsRequired)
	})
}
