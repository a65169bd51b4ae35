package feedbackrepo

import (
	"context"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormFeedbackRepository implements FeedbackRepository using GORM.
type GormFeedbackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFeedbackRepository creates a new GORM feedback repository.
func NewGormFeedbackRepository(db *gorm.DB, tracker aggregateTracker) *GormFeedbackRepository {
	return &GormFeedbackRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new feedback record to the database.
func (r *GormFeedbackRepository) Add(ctx context.Context, feedback *interview.Feedback) error {
	if err := feedback.Validate(); err != nil {
		return err
	}

	dto := fromDomain(feedback)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(feedback.ID(), feedback)
	return nil
}

// ExistsForInterview reports whether feedback for the interview already exists.
func (r *GormFeedbackRepository) ExistsForInterview(ctx context.Context, interviewID kernel.UUID) (bool, error) {
	if err := interviewID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&FeedbackDTO{}).
		Where("interview_id = ?", interviewID.Bytes()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllForProvider retrieves every feedback left on the provider's interviews.
func (r *GormFeedbackRepository) GetAllForProvider(ctx context.Context, providerID kernel.UUID) ([]*interview.Feedback, error) {
	if err := providerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []FeedbackDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN interviews ON interviews.id = interview_feedback.interview_id").
		Where("interviews.provider_id = ?", providerID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	feedbacks := make([]*interview.Feedback, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}

	return feedbacks, nil
}
