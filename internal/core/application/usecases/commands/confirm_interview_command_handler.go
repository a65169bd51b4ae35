package commands

import (
	"context"
	"log/slog"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/services"
	"riderspool/internal/core/ports"
)

// ConfirmInterviewCommandHandler handles interview confirmation by the
// provider. The interview row is locked for the duration of the
// transaction so concurrent transitions on the same interview serialize;
// the loser re-reads the updated status and fails its precondition.
type ConfirmInterviewCommandHandler struct {
	uowFactory   InterviewUoWFactory
	accessPolicy services.AccessPolicy
	dispatcher   notificationDispatcher
}

// NewConfirmInterviewCommandHandler creates a handler for interview confirmation.
func NewConfirmInterviewCommandHandler(uowFactory InterviewUoWFactory,
	notifier ports.Notifier, logger *slog.Logger) ConfirmInterviewCommandHandler {
	return ConfirmInterviewCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewAccessPolicy(),
		dispatcher:   newNotificationDispatcher(notifier, logger),
	}
}

// Handle processes the confirmation command.
// Only the interview's provider may confirm, and only from pending status.
// The employer is notified after the transaction commits.
func (h ConfirmInterviewCommandHandler) Handle(ctx context.Context, cmd ConfirmInterviewCommand) error {
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

	if err = h.accessPolicy.Authorize(cmd.Actor(), interview.ActionConfirm, target); err != nil {
		return err
	}

	if err = target.Confirm(); err != nil {
		return err
	}

	if err = interviewRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.dispatch(ctx, target.EmployerID(), ports.EventInterviewConfirmed, target)
	return nil
}
