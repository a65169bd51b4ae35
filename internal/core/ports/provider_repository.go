package ports

import (
	"context"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/domain/model/provider"
)

// ProviderRepository defines the persistence contract for provider
// profile aggregates.
type ProviderRepository interface {
	// Add persists a new provider profile to storage.
	Add(ctx context.Context, aggregate *provider.Provider) error

	// Update persists changes to an existing provider profile.
	Update(ctx context.Context, aggregate *provider.Provider) error

	// Get retrieves a provider profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error)

	// GetForUpdate retrieves a provider profile and locks its row for the
	// duration of the current transaction. Used when the interview lifecycle
	// updates the profile's counters and rating.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*provider.Provider, error)
}
