package ports

import (
	"context"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/domain/model/office"
)

// OfficeLocationRepository defines the persistence contract for the
// office location catalogue.
type OfficeLocationRepository interface {
	// Add persists a new office location to storage.
	Add(ctx context.Context, aggregate *office.OfficeLocation) error

	// Update persists changes to an existing office location.
	Update(ctx context.Context, aggregate *office.OfficeLocation) error

	// Get retrieves an office location by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*office.OfficeLocation, error)
}
