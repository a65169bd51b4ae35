package commands

import (
	"context"
	"log/slog"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/services"
	"riderspool/internal/core/ports"
)

// RescheduleInterviewCommandHandler handles moving an interview to a new
// schedule. The interview resets to pending and its confirmation is
// cleared, so the provider must confirm again.
type RescheduleInterviewCommandHandler struct {
	uowFactory   InterviewUoWFactory
	accessPolicy services.AccessPolicy
	dispatcher   notificationDispatcher
}

// NewRescheduleInterviewCommandHandler creates a handler for interview rescheduling.
func NewRescheduleInterviewCommandHandler(uowFactory InterviewUoWFactory,
	notifier ports.Notifier, logger *slog.Logger) RescheduleInterviewCommandHandler {
	return RescheduleInterviewCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewAccessPolicy(),
		dispatcher:   newNotificationDispatcher(notifier, logger),
	}
}

// Handle processes the reschedule command.
// Cancelled and completed interviews reject rescheduling. The party that
// did not reschedule is notified after commit.
func (h RescheduleInterviewCommandHandler) Handle(ctx context.Context, cmd RescheduleInterviewCommand) error {
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

	if err = h.accessPolicy.Authorize(cmd.Actor(), interview.ActionReschedule, target); err != nil {
		return err
	}

	if err = target.Reschedule(cmd.Schedule(), cmd.Reason()); err != nil {
		return err
	}

	if err = interviewRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.dispatch(ctx, otherParty(cmd.Actor().ID(), target), ports.EventInterviewRescheduled, target)
	return nil
}
