package queries

import (
	"errors"
	"time"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

var ErrGetProviderFeedbackQueryIsNotConstructed = errors.New(
	"GetProviderFeedbackQuery must be created via NewGetProviderFeedbackQuery constructor",
)

// GetProviderFeedbackQuery retrieves all feedback recorded for a
// provider's interviews, together with the provider's aggregate rating.
type GetProviderFeedbackQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProviderFeedbackQuery creates a query for a provider's feedback history.
func NewGetProviderFeedbackQuery(providerID kernel.UUID) (GetProviderFeedbackQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderFeedbackQuery{}, err
	}
	return GetProviderFeedbackQuery{
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProviderFeedbackQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderFeedbackQueryIsNotConstructed)
}

// ProviderID returns the provider whose feedback is listed.
func (q GetProviderFeedbackQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// GetProviderFeedbackQueryResponse is one feedback row in the listing.
type GetProviderFeedbackQueryResponse struct {
	ID             kernel.UUID
	InterviewID    kernel.UUID
	Rating         int
	Comments       string
	Strengths      string
	Improvements   string
	WouldHireAgain bool
	CreatedAt      time.Time
}
