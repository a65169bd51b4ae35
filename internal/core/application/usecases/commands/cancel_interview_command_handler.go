package commands

import (
	"context"
	"log/slog"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/services"
	"riderspool/internal/core/ports"
)

// CancelInterviewCommandHandler handles interview cancellation by either
// party. The party that did not cancel is notified after commit.
type CancelInterviewCommandHandler struct {
	uowFactory   InterviewUoWFactory
	accessPolicy services.AccessPolicy
	dispatcher   notificationDispatcher
}

// NewCancelInterviewCommandHandler creates a handler for interview cancellation.
func NewCancelInterviewCommandHandler(uowFactory InterviewUoWFactory,
	notifier ports.Notifier, logger *slog.Logger) CancelInterviewCommandHandler {
	return CancelInterviewCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewAccessPolicy(),
		dispatcher:   newNotificationDispatcher(notifier, logger),
	}
}

// Handle processes the cancellation command.
// Cancelled and completed interviews reject cancellation.
func (h CancelInterviewCommandHandler) Handle(ctx context.Context, cmd CancelInterviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	interviewRepo := uow.InterviewRepository()
	target, err := interviewRepo.GetForUpdate(ctx, cmd.InterviewID())
	if err != nil {
		return err
	}

	if err = h.accessPolicy.Authorize(cmd.Actor(), interview.ActionCancel, target); err != nil {
		return err
	}

	if err = target.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = interviewRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.dispatch(ctx, otherParty(cmd.Actor().ID(), target), ports.EventInterviewCancelled, target)
	return nil
}
