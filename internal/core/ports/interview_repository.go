package ports

import (
	"context"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
)

// InterviewRepository defines the persistence contract for interview
// aggregates.
type InterviewRepository interface {
	// Add persists a new interview aggregate to storage.
	Add(ctx context.Context, aggregate *interview.Interview) error

	// Update persists changes to an existing interview aggregate.
	Update(ctx context.Context, aggregate *interview.Interview) error

	// Get retrieves an interview aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*interview.Interview, error)

	// GetForUpdate retrieves an interview aggregate by its unique identifier
	// and locks its row for the duration of the current transaction.
	// Lifecycle commands use it so the read-check-write sequence runs under
	// an exclusive row lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*interview.Interview, error)
}
