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

func TestConfirmInterviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	employerID := kernel.NewUUID()
	providerID := kernel.NewUUID()
	rider := testActor(t, providerID, actor.RoleProvider)
	target := testInterview(t, employerID, providerID, interview.StatusPending)

	cmd, err := commands.NewConfirmInterviewCommand(target.ID(), rider)
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
		return n.Event == ports.EventInterviewConfirmed && n.RecipientID.IsEqual(employerID)
	})).Return(nil).Once()

	factory := new(MockInterviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmInterviewCommandHandler(factory, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, interview.StatusConfirmed, target.Status())
	assert.NotNil(t, target.ConfirmedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestConfirmInterviewCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	employerID := kernel.NewUUID()
	target := testInterview(t, employerID, kernel.NewUUID(), interview.StatusPending)
	employer := testActor(t, employerID, actor.RoleEmployer)

	cmd, err := commands.NewConfirmInterviewCommand(target.ID(), employer)
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

	h := commands.NewConfirmInterviewCommandHandler(factory, new(MockNotifier), testLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, interview.StatusPending, target.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirmInterviewCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	providerID := kernel.NewUUID()
	rider := testActor(t, providerID, actor.RoleProvider)
	target := testInterview(t, kernel.NewUUID(), providerID, interview.StatusConfirmed)

	cmd, err := commands.NewConfirmInterviewCommand(target.ID(), rider)
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

	notifier := new(MockNotifier)
	h := commands.NewConfirmInterviewCommandHandler(factory, notifier, testLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	notifier.AssertNotCalled(t, "Notify")
}

func TestConfirmInterviewCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	interviewID := kernel.NewUUID()
	rider := testActor(t, kernel.NewUUID(), actor.RoleProvider)

	cmd, err := commands.NewConfirmInterviewCommand(interviewID, rider)
	require.NoError(t, err)

	repo := new(MockInterviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InterviewRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, interviewID).
			Return(nil, errs.NewObjectNotFoundError("interviewID", interviewID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInterviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmInterviewCommandHandler(factory, new(MockNotifier), testLogger())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestConfirmInterviewCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ConfirmInterviewCommand{} // not constructed properly
	factory := new(MockInterviewUoWFactory)
	h := commands.NewConfirmInterviewCommandHandler(factory, new(MockNotifier), testLogger())
	require.Error(t, h.Handle(ctx, cmd))
}
