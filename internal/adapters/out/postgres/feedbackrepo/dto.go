// Package feedbackrepo provides data transfer objects and mapping functions
// for interview feedback persistence.
package feedbackrepo

import (
	"time"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FeedbackDTO represents the database structure for persisting interview
// feedback. The unique index on InterviewID backs the one-feedback-per-
// interview rule at the storage level.
type FeedbackDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InterviewID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	Rating       int
	Comments     string
	Strengths    string
	Improvements string

	WouldHireAgain bool

	CreatedAt time.Time
}

// TableName specifies the database table name for feedback entities.
func (FeedbackDTO) TableName() string {
	return "interview_feedback"
}

// fromDomain converts a feedback entity to its database representation.
func fromDomain(feedback *interview.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:             feedback.ID().Bytes(),
		InterviewID:    feedback.InterviewID().Bytes(),
		Rating:         feedback.Rating(),
		Comments:       feedback.Comments(),
		Strengths:      feedback.Strengths(),
		Improvements:   feedback.Improvements(),
		WouldHireAgain: feedback.WouldHireAgain(),
		CreatedAt:      feedback.CreatedAt(),
	}
}

// toDomain converts a database DTO to a feedback entity using RestoreFeedback.
func toDomain(dto FeedbackDTO) (*interview.Feedback, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	interviewID, err := kernel.UUIDFromBytes(dto.InterviewID[:])
	if err != nil {
		return nil, err
	}

	return interview.RestoreFeedback(id, interviewID, dto.Rating, dto.Comments,
		dto.Strengths, dto.Improvements, dto.WouldHireAgain, dto.CreatedAt)
}
