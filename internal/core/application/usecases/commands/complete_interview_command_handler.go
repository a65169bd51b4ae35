package commands

import (
	"context"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/services"
)

// CompleteInterviewCommandHandler handles marking a confirmed interview
// as held. The provider's completed interview counter is incremented in
// the same transaction, so the counter and the status never diverge.
type CompleteInterviewCommandHandler struct {
	uowFactory   CompletionUoWFactory
	accessPolicy services.AccessPolicy
}

// NewCompleteInterviewCommandHandler creates a handler for interview completion.
func NewCompleteInterviewCommandHandler(uowFactory CompletionUoWFactory) CompleteInterviewCommandHandler {
	return CompleteInterviewCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewAccessPolicy(),
	}
}

// Handle processes the completion command.
// Only the interview's employer may complete, and only from confirmed status.
func (h CompleteInterviewCommandHandler) Handle(ctx context.Context, cmd CompleteInterviewCommand) error {
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

	if err = h.accessPolicy.Authorize(cmd.Actor(), interview.ActionComplete, target); err != nil {
		return err
	}

	if err = target.Complete(); err != nil {
		return err
	}

	if err = interviewRepo.Update(ctx, target); err != nil {
		return err
	}

	providerRepo := uow.ProviderRepository()
	interviewee, err := providerRepo.GetForUpdate(ctx, target.ProviderID())
	if err != nil {
		return err
	}

	interviewee.RecordCompletedInterview()
	if err = providerRepo.Update(ctx, interviewee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
