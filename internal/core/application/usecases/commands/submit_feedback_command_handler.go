package commands

import (
	"context"
	"errors"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/services"
	"riderspool/internal/pkg/errs"
)

// errFeedbackAlreadySubmitted names the duplicate-submission condition.
// Feedback is recorded at most once per interview; a repeat attempt is an
// invalid transition from the interview's point of view.
var errFeedbackAlreadySubmitted = errors.New("feedback already submitted for this interview")

// SubmitFeedbackCommandHandler handles feedback submission for a completed
// interview. Recording the feedback and recomputing the provider's mean
// rating from all their feedback happen in one transaction.
type SubmitFeedbackCommandHandler struct {
	uowFactory       FeedbackUoWFactory
	accessPolicy     services.AccessPolicy
	ratingCalculator services.RatingCalculator
}

// NewSubmitFeedbackCommandHandler creates a handler for feedback submission.
func NewSubmitFeedbackCommandHandler(uowFactory FeedbackUoWFactory) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{
		uowFactory:       uowFactory,
		accessPolicy:     services.NewAccessPolicy(),
		ratingCalculator: services.NewRatingCalculator(),
	}
}

// Handle processes the feedback command.
// Only the interview's employer may submit, only after completion, and
// only once. A second submission fails with errs.ErrInvalidTransition.
func (h SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) error {
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

	target, err := uow.InterviewRepository().GetForUpdate(ctx, cmd.InterviewID())
	if err != nil {
		return err
	}

	if err = h.accessPolicy.Authorize(cmd.Actor(), interview.ActionSubmitFeedback, target); err != nil {
		return err
	}

	if err = target.ValidateSubmitFeedback(); err != nil {
		return err
	}

	feedbackRepo := uow.FeedbackRepository()
	exists, err := feedbackRepo.ExistsForInterview(ctx, target.ID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewInvalidTransitionErrorWithCause(
			interview.ActionSubmitFeedback.String(), target.Status().String(), errFeedbackAlreadySubmitted)
	}

	feedback, err := interview.NewFeedback(cmd.FeedbackID(), target.ID(), cmd.Rating(),
		cmd.Comments(), cmd.Strengths(), cmd.Improvements(), cmd.WouldHireAgain())
	if err != nil {
		return err
	}

	if err = feedbackRepo.Add(ctx, feedback); err != nil {
		return err
	}

	providerRepo := uow.ProviderRepository()
	interviewee, err := providerRepo.GetForUpdate(ctx, target.ProviderID())
	if err != nil {
		return err
	}

	feedbacks, err := feedbackRepo.GetAllForProvider(ctx, interviewee.ID())
	if err != nil {
		return err
	}

	if err = interviewee.UpdateRating(h.ratingCalculator.Mean(feedbacks)); err != nil {
		return err
	}

	if err = providerRepo.Update(ctx, interviewee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
