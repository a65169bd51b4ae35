package interviewrepo

import (
	"context"
	"errors"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInterviewRepository implements InterviewRepository using GORM.
type GormInterviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInterviewRepository creates a new GORM interview repository.
func NewGormInterviewRepository(db *gorm.DB, tracker aggregateTracker) *GormInterviewRepository {
	return &GormInterviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new interview to the database.
func (r *GormInterviewRepository) Add(ctx context.Context, aggregate *interview.Interview) error {
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

// Update saves an existing interview to the database.
// Select("*") forces zero-valued columns through, so a reschedule that
// clears confirmed_at actually clears it.
func (r *GormInterviewRepository) Update(ctx context.Context, aggregate *interview.Interview) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InterviewDTO{}).
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

// Get retrieves an interview by ID.
func (r *GormInterviewRepository) Get(ctx context.Context, id kernel.UUID) (*interview.Interview, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InterviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("interview", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an interview by ID with a SELECT FOR UPDATE row
// lock. Within a transaction this serializes concurrent transitions on the
// same interview: the second caller blocks until the first commits, then
// reads the updated row and fails its precondition instead of overwriting.
func (r *GormInterviewRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*interview.Interview, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InterviewDTO
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("interview", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
