package commands

import (
	"errors"

	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/errs"
	"riderspool/internal/pkg/guard"
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

// SubmitFeedbackCommand represents the employer's one-time feedback on a
// completed interview.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	feedbackID  kernel.UUID
	interviewID kernel.UUID
	actor       actor.Actor

	rating         int
	comments       string
	strengths      string
	improvements   string
	wouldHireAgain bool

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand creates a command to record interview feedback.
// The rating must fall within the feedback rating range.
func NewSubmitFeedbackCommand(feedbackID kernel.UUID, interviewID kernel.UUID, a actor.Actor,
	rating int, comments string, strengths string, improvements string,
	wouldHireAgain bool) (SubmitFeedbackCommand, error) {
	command := SubmitFeedbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFeedbackID(feedbackID),
		command.setInterviewID(interviewID),
		command.setActor(a),
		command.setRating(rating),
	); err != nil {
		return SubmitFeedbackCommand{}, err
	}

	command.comments = comments
	command.strengths = strengths
	command.improvements = improvements
	command.wouldHireAgain = wouldHireAgain
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

// FeedbackID returns the identifier chosen for the new feedback.
func (c SubmitFeedbackCommand) FeedbackID() kernel.UUID {
	return c.feedbackID
}

// InterviewID returns the interview being reviewed.
func (c SubmitFeedbackCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

// Actor returns the acting user.
func (c SubmitFeedbackCommand) Actor() actor.Actor {
	return c.actor
}

// Rating returns the rating given to the provider.
func (c SubmitFeedbackCommand) Rating() int {
	return c.rating
}

// Comments returns the free-text feedback comments.
func (c SubmitFeedbackCommand) Comments() string {
	return c.comments
}

// Strengths returns the noted provider strengths.
func (c SubmitFeedbackCommand) Strengths() string {
	return c.strengths
}

// Improvements returns the noted areas for improvement.
func (c SubmitFeedbackCommand) Improvements() string {
	return c.improvements
}

// WouldHireAgain reports whether the employer would hire this provider again.
func (c SubmitFeedbackCommand) WouldHireAgain() bool {
	return c.wouldHireAgain
}

func (c *SubmitFeedbackCommand) setFeedbackID(feedbackID kernel.UUID) error {
	if err := feedbackID.Validate(); err != nil {
		return err
	}
	c.feedbackID = feedbackID
	return nil
}

func (c *SubmitFeedbackCommand) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return err
	}
	c.interviewID = interviewID
	return nil
}

func (c *SubmitFeedbackCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}

func (c *SubmitFeedbackCommand) setRating(rating int) error {
	if rating < interview.FeedbackMinRating || rating > interview.FeedbackMaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating,
			interview.FeedbackMinRating, interview.FeedbackMaxRating)
	}
	c.rating = rating
	return nil
}
