// Package providerrepo provides data transfer objects and mapping functions
// for provider profile persistence.
package providerrepo

import (
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/domain/model/provider"

	"github.com/google/uuid"
)

// ProviderDTO represents the database structure for persisting provider
// profiles. The ID matches the platform user ID.
type ProviderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string
	Category string `gorm:"index"`

	Rating          float64 `gorm:"type:numeric(3,2)"`
	TotalInterviews int
}

// TableName specifies the database table name for provider entities.
func (ProviderDTO) TableName() string {
	return "provider_profiles"
}

// fromDomain converts a provider aggregate to its database representation.
func fromDomain(aggregate *provider.Provider) ProviderDTO {
	return ProviderDTO{
		ID:              aggregate.ID().Bytes(),
		FullName:        aggregate.FullName(),
		Category:        aggregate.Category(),
		Rating:          aggregate.Rating(),
		TotalInterviews: aggregate.TotalInterviews(),
	}
}

// toDomain converts a database DTO to a provider aggregate using RestoreProvider.
func toDomain(dto ProviderDTO) (*provider.Provider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return provider.RestoreProvider(id, dto.FullName, dto.Category, dto.Rating, dto.TotalInterviews)
}
