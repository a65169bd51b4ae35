// Package officelocationrepo provides data transfer objects and mapping
// functions for office location persistence.
package officelocationrepo

import (
	"time"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/domain/model/office"

	"github.com/google/uuid"
)

// OfficeLocationDTO represents the database structure for persisting office
// locations.
type OfficeLocationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Address string
	City    string `gorm:"index"`

	IsActive bool `gorm:"index"`

	CreatedAt time.Time
}

// TableName specifies the database table name for office location entities.
func (OfficeLocationDTO) TableName() string {
	return "office_locations"
}

// fromDomain converts an office location aggregate to its database representation.
func fromDomain(aggregate *office.OfficeLocation) OfficeLocationDTO {
	return OfficeLocationDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		City:      aggregate.City(),
		IsActive:  aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an office location aggregate using
// RestoreOfficeLocation.
func toDomain(dto OfficeLocationDTO) (*office.OfficeLocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return office.RestoreOfficeLocation(id, dto.Name, dto.Address, dto.City,
		dto.IsActive, dto.CreatedAt)
}
