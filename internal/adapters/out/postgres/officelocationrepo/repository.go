package officelocationrepo

import (
	"context"
	"errors"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/domain/model/office"
	"riderspool/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfficeLocationRepository implements OfficeLocationRepository using GORM.
type GormOfficeLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfficeLocationRepository creates a new GORM office location repository.
func NewGormOfficeLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormOfficeLocationRepository {
	return &GormOfficeLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new office location to the database.
func (r *GormOfficeLocationRepository) Add(ctx context.Context, aggregate *office.OfficeLocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing office location to the database.
// Select("*") forces zero-valued columns through, so deactivation persists.
func (r *GormOfficeLocationRepository) Update(ctx context.Context, aggregate *office.OfficeLocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfficeLocationDTO{}).
		Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an office location by ID.
func (r *GormOfficeLocationRepository) Get(ctx context.Context, id kernel.UUID) (*office.OfficeLocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfficeLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("office location", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
