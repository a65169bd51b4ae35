package ports

import (
	"context"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
)

// FeedbackRepository defines the persistence contract for interview
// feedback entities.
type FeedbackRepository interface {
	// Add persists a new feedback entity to storage.
	Add(ctx context.Context, feedback *interview.Feedback) error

	// ExistsForInterview reports whether feedback has already been recorded
	// for the given interview.
	ExistsForInterview(ctx context.Context, interviewID kernel.UUID) (bool, error)

	// GetAllForProvider retrieves every feedback recorded for the given
	// provider's interviews. Used to recompute the aggregate rating.
	GetAllForProvider(ctx context.Context, providerID kernel.UUID) ([]*interview.Feedback, error)
}
