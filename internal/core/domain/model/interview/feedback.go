package interview

import (
	"errors"
	"time"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/errs"
	"riderspool/internal/pkg/guard"
)

const (
	FeedbackMinRating = 1
	FeedbackMaxRating = 5
)

var ErrFeedbackIsNotConstructed = errors.New(
	"feedback is not constructed, use NewFeedback or RestoreFeedback")

// Feedback is the employer's one-time evaluation of a completed interview.
// It is immutable once recorded and feeds the provider's aggregate rating.
type Feedback struct {
	id          kernel.UUID
	interviewID kernel.UUID

	rating       int
	comments     string
	strengths    string
	improvements string

	wouldHireAgain bool

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewFeedback records feedback for an interview.
// The rating must fall within [FeedbackMinRating, FeedbackMaxRating].
func NewFeedback(id kernel.UUID, interviewID kernel.UUID, rating int,
	comments string, strengths string, improvements string,
	wouldHireAgain bool) (*Feedback, error) {
	feedback := &Feedback{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		feedback.setID(id),
		feedback.setInterviewID(interviewID),
		feedback.setRating(rating),
	)
	if err != nil {
		return nil, err
	}

	feedback.comments = comments
	feedback.strengths = strengths
	feedback.improvements = improvements
	feedback.wouldHireAgain = wouldHireAgain
	feedback.createdAt = time.Now().UTC()

	return feedback, nil
}

// RestoreFeedback reconstructs a Feedback from persistence.
func RestoreFeedback(id kernel.UUID, interviewID kernel.UUID, rating int,
	comments string, strengths string, improvements string,
	wouldHireAgain bool, createdAt time.Time) (*Feedback, error) {
	feedback := &Feedback{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		feedback.setID(id),
		feedback.setInterviewID(interviewID),
		feedback.setRating(rating),
	)
	if err != nil {
		return nil, err
	}

	feedback.comments = comments
	feedback.strengths = strengths
	feedback.improvements = improvements
	feedback.wouldHireAgain = wouldHireAgain
	feedback.createdAt = createdAt

	return feedback, nil
}

func (f *Feedback) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	f.id = id
	return nil
}

func (f *Feedback) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("interviewID", err)
	}
	f.interviewID = interviewID
	return nil
}

func (f *Feedback) setRating(rating int) error {
	if rating < FeedbackMinRating || rating > FeedbackMaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, FeedbackMinRating, FeedbackMaxRating)
	}
	f.rating = rating
	return nil
}

func (f *Feedback) ID() kernel.UUID {
	return f.id
}

func (f *Feedback) InterviewID() kernel.UUID {
	return f.interviewID
}

func (f *Feedback) Rating() int {
	return f.rating
}

func (f *Feedback) Comments() string {
	return f.comments
}

func (f *Feedback) Strengths() string {
	return f.strengths
}

func (f *Feedback) Improvements() string {
	return f.improvements
}

func (f *Feedback) WouldHireAgain() bool {
	return f.wouldHireAgain
}

func (f *Feedback) CreatedAt() time.Time {
	return f.createdAt
}

// IsEqual compares feedbacks by identity.
func (f *Feedback) IsEqual(other *Feedback) bool {
	return f.id.IsEqual(other.id)
}

// Validate checks that the Feedback was created through a constructor.
func (f *Feedback) Validate() error {
	return f.guard.Validate(ErrFeedbackIsNotConstructed)
}
