package queries

import (
	"context"

	"riderspool/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProviderFeedbackQueryHandler lists the feedback left on a provider's
// interviews, newest first.
type GetProviderFeedbackQueryHandler struct {
	db *gorm.DB
}

// NewGetProviderFeedbackQueryHandler creates a handler for feedback listings.
// Requires a GORM database connection for query execution.
func NewGetProviderFeedbackQueryHandler(db *gorm.DB) GetProviderFeedbackQueryHandler {
	return GetProviderFeedbackQueryHandler{db: db}
}

// Handle executes the feedback listing query.
func (h GetProviderFeedbackQueryHandler) Handle(
	ctx context.Context,
	query GetProviderFeedbackQuery,
) ([]GetProviderFeedbackQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			f.id,
			f.interview_id,
			f.rating,
			f.comments,
			f.strengths,
			f.improvements,
			f.would_hire_again,
			f.created_at
		FROM interview_feedback f
		JOIN interviews i ON i.id = f.interview_id
		WHERE i.provider_id = ?
		ORDER BY f.created_at DESC
	`, query.ProviderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedbacks := make([]GetProviderFeedbackQueryResponse, 0)
	for rows.Next() {
		var resp GetProviderFeedbackQueryResponse
		var id, interviewID uuid.UUID

		err = rows.Scan(
			&id,
			&interviewID,
			&resp.Rating,
			&resp.Comments,
			&resp.Strengths,
			&resp.Improvements,
			&resp.WouldHireAgain,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.InterviewID, err = kernel.UUIDFromBytes(interviewID[:]); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feedbacks, nil
}
