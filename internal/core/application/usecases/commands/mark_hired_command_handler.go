package commands

import (
	"context"
	"log/slog"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/services"
	"riderspool/internal/core/ports"
)

// MarkHiredCommandHandler handles hiring the provider of a completed
// interview. Repeating the command on an already hired interview is a
// harmless no-op; the provider is notified each time the command
// succeeds.
type MarkHiredCommandHandler struct {
	uowFactory   InterviewUoWFactory
	accessPolicy services.AccessPolicy
	dispatcher   notificationDispatcher
}

// NewMarkHiredCommandHandler creates a handler for the hire decision.
func NewMarkHiredCommandHandler(uowFactory InterviewUoWFactory,
	notifier ports.Notifier, logger *slog.Logger) MarkHiredCommandHandler {
	return MarkHiredCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewAccessPolicy(),
		dispatcher:   newNotificationDispatcher(notifier, logger),
	}
}

// Handle processes the hire command.
// Only the interview's employer may hire, and only after completion.
func (h MarkHiredCommandHandler) Handle(ctx context.Context, cmd MarkHiredCommand) error {
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

	if err = h.accessPolicy.Authorize(cmd.Actor(), interview.ActionMarkHired, target); err != nil {
		return err
	}

	if err = target.MarkHired(); err != nil {
		return err
	}

	if err = interviewRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.dispatch(ctx, target.ProviderID(), ports.EventProviderHired, target)
	return nil
}
