// Package interviewrepo provides data transfer objects and mapping functions
// for interview persistence. This package implements the repository pattern
// for the interview aggregate, handling the conversion between domain
// entities and database representations.
package interviewrepo

import (
	"time"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InterviewDTO represents the database structure for persisting interview
// aggregates. Indexed by party and status for the role-scoped listings.
type InterviewDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	EmployerID       uuid.UUID   `gorm:"type:uuid;index"`
	ProviderID       uuid.UUID   `gorm:"type:uuid;index"`
	OfficeLocationID *uuid.UUID  `gorm:"type:uuid;index"`
	Schedule         ScheduleDTO `gorm:"embedded"`
	Status           int         `gorm:"index"`

	Notes              string
	CancellationReason string
	RescheduleReason   string

	IsHired bool

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for interview entities.
func (InterviewDTO) TableName() string {
	return "interviews"
}

// ScheduleDTO represents the embedded interview schedule: the day plus the
// wall-clock time of day it starts.
type ScheduleDTO struct {
	Day    time.Time `gorm:"type:date"`
	Hour   int       `gorm:"type:smallint"`
	Minute int       `gorm:"type:smallint"`
}

// fromDomain converts an interview aggregate to its database representation.
func fromDomain(aggregate *interview.Interview) InterviewDTO {
	var officeLocationID *uuid.UUID
	if id := aggregate.OfficeLocationID(); id != nil {
		raw := id.Bytes()
		officeLocationID = &raw
	}

	return InterviewDTO{
		ID:               aggregate.ID().Bytes(),
		EmployerID:       aggregate.EmployerID().Bytes(),
		ProviderID:       aggregate.ProviderID().Bytes(),
		OfficeLocationID: officeLocationID,
		Schedule: ScheduleDTO{
			Day:    aggregate.Schedule().Day(),
			Hour:   aggregate.Schedule().TimeOfDay().Hour(),
			Minute: aggregate.Schedule().TimeOfDay().Minute(),
		},
		Status:             int(aggregate.Status()),
		Notes:              aggregate.Notes(),
		CancellationReason: aggregate.CancellationReason(),
		RescheduleReason:   aggregate.RescheduleReason(),
		IsHired:            aggregate.IsHired(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		ConfirmedAt:        aggregate.ConfirmedAt(),
		CompletedAt:        aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to an interview aggregate using
// RestoreInterview.
func toDomain(dto InterviewDTO) (*interview.Interview, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	employerID, err := kernel.UUIDFromBytes(dto.EmployerID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	var officeLocationID *kernel.UUID
	if dto.OfficeLocationID != nil {
		officeID, officeErr := kernel.UUIDFromBytes((*dto.OfficeLocationID)[:])
		if officeErr != nil {
			return nil, officeErr
		}
		officeLocationID = &officeID
	}

	timeOfDay, err := kernel.NewTimeOfDay(dto.Schedule.Hour, dto.Schedule.Minute)
	if err != nil {
		return nil, err
	}

	schedule, err := kernel.NewSchedule(dto.Schedule.Day, timeOfDay)
	if err != nil {
		return nil, err
	}

	return interview.RestoreInterview(id, employerID, providerID, schedule, officeLocationID,
		interview.Status(dto.Status), dto.Notes, dto.CancellationReason, dto.RescheduleReason,
		dto.IsHired, dto.CreatedAt, dto.UpdatedAt, dto.ConfirmedAt, dto.CompletedAt)
}
