// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. The unit of work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes within a single
// database transaction.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.InterviewRepository().Add(ctx, interview); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its own transaction state, so concurrent
// operations must use separate instances obtained from the factory.
package postgres

import (
	"context"

	"riderspool/internal/adapters/out/postgres/feedbackrepo"
	"riderspool/internal/adapters/out/postgres/interviewrepo"
	"riderspool/internal/adapters/out/postgres/officelocationrepo"
	"riderspool/internal/adapters/out/postgres/providerrepo"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// instance with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories obtained from it run within
// the active transaction; aggregates they add or update are tracked for
// post-commit processing.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Subsequent repository
// operations execute within this transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// InterviewRepository provides access to interview persistence within the
// unit of work. Operations run in the current transaction if one is active,
// otherwise on the main database connection.
func (uow *GormUnitOfWork) InterviewRepository() ports.InterviewRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return interviewrepo.NewGormInterviewRepository(db, uow)
}

// FeedbackRepository provides access to interview feedback persistence within
// the unit of work.
func (uow *GormUnitOfWork) FeedbackRepository() ports.FeedbackRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return feedbackrepo.NewGormFeedbackRepository(db, uow)
}

// OfficeLocationRepository provides access to office location persistence
// within the unit of work.
func (uow *GormUnitOfWork) OfficeLocationRepository() ports.OfficeLocationRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return officelocationrepo.NewGormOfficeLocationRepository(db, uow)
}

// ProviderRepository provides access to provider profile persistence within
// the unit of work.
func (uow *GormUnitOfWork) ProviderRepository() ports.ProviderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return providerrepo.NewGormProviderRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it when aggregates are added or
// updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
