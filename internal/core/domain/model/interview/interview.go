package interview

import (
	"errors"
	"time"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/errs"
	"riderspool/internal/pkg/guard"
)

// BookingGraceWindow is how far into the past an interview may still be
// booked. Schedules earlier than now minus this window are rejected;
// anything later, including slightly past times, is accepted to tolerate
// clock skew and backfilled bookings.
const BookingGraceWindow = 30 * 24 * time.Hour

var ErrInterviewIsNotConstructed = errors.New(
	"interview is not constructed, use NewInterview or RestoreInterview")

// Interview is the aggregate root of the interview lifecycle.
// An interview is booked by an employer with a service provider for a
// scheduled day and time, optionally at one of the catalogued office
// locations, and then moves through the status state machine.
type Interview struct {
	id               kernel.UUID
	employerID       kernel.UUID
	providerID       kernel.UUID
	schedule         kernel.Schedule
	officeLocationID *kernel.UUID
	status           Status

	notes              string
	cancellationReason string
	rescheduleReason   string

	isHired bool

	createdAt   time.Time
	updatedAt   time.Time
	confirmedAt *time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewInterview books a new interview in Pending status.
// The employer and provider must be distinct, and the schedule must not be
// earlier than BookingGraceWindow before the current time.
func NewInterview(id kernel.UUID, employerID kernel.UUID, providerID kernel.UUID,
	schedule kernel.Schedule, officeLocationID *kernel.UUID, notes string) (*Interview, error) {
	interview := &Interview{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		interview.setID(id),
		interview.setEmployerID(employerID),
		interview.setProviderID(providerID),
		interview.setSchedule(schedule),
		interview.setOfficeLocationID(officeLocationID),
	)
	if err != nil {
		return nil, err
	}

	if employerID.IsEqual(providerID) {
		return nil, errs.NewValueIsInvalidError("providerID")
	}

	now := time.Now().UTC()
	if schedule.At().Before(now.Add(-BookingGraceWindow)) {
		return nil, errs.NewValueIsInvalidError("schedule")
	}

	interview.notes = notes
	interview.status = StatusPending
	interview.createdAt = now
	interview.updatedAt = now

	return interview, nil
}

// RestoreInterview reconstructs an Interview from persistence without
// re-running booking-time validation.
func RestoreInterview(id kernel.UUID, employerID kernel.UUID, providerID kernel.UUID,
	schedule kernel.Schedule, officeLocationID *kernel.UUID, status Status,
	notes string, cancellationReason string, rescheduleReason string, isHired bool,
	createdAt time.Time, updatedAt time.Time,
	confirmedAt *time.Time, completedAt *time.Time) (*Interview, error) {
	interview := &Interview{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		interview.setID(id),
		interview.setEmployerID(employerID),
		interview.setProviderID(providerID),
		interview.setSchedule(schedule),
		interview.setOfficeLocationID(officeLocationID),
		interview.setStatus(status),
	)
	if err != nil {
		return nil, err
	}

	interview.notes = notes
	interview.cancellationReason = cancellationReason
	interview.rescheduleReason = rescheduleReason
	interview.isHired = isHired
	interview.createdAt = createdAt
	interview.updatedAt = updatedAt
	interview.confirmedAt = confirmedAt
	interview.completedAt = completedAt

	return interview, nil
}

func (i *Interview) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	i.id = id
	return nil
}

func (i *Interview) setEmployerID(employerID kernel.UUID) error {
	if err := employerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employerID", err)
	}
	i.employerID = employerID
	return nil
}

func (i *Interview) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerID", err)
	}
	i.providerID = providerID
	return nil
}

func (i *Interview) setSchedule(schedule kernel.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("schedule", err)
	}
	i.schedule = schedule
	return nil
}

func (i *Interview) setOfficeLocationID(officeLocationID *kernel.UUID) error {
	if officeLocationID != nil {
		if err := officeLocationID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("officeLocationID", err)
		}
	}
	i.officeLocationID = officeLocationID
	return nil
}

func (i *Interview) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}

func (i *Interview) ID() kernel.UUID {
	return i.id
}

func (i *Interview) EmployerID() kernel.UUID {
	return i.employerID
}

func (i *Interview) ProviderID() kernel.UUID {
	return i.providerID
}

func (i *Interview) Schedule() kernel.Schedule {
	return i.schedule
}

func (i *Interview) OfficeLocationID() *kernel.UUID {
	return i.officeLocationID
}

func (i *Interview) Status() Status {
	return i.status
}

func (i *Interview) Notes() string {
	return i.notes
}

func (i *Interview) CancellationReason() string {
	return i.cancellationReason
}

func (i *Interview) RescheduleReason() string {
	return i.rescheduleReason
}

func (i *Interview) IsHired() bool {
	return i.isHired
}

func (i *Interview) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Interview) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Interview) ConfirmedAt() *time.Time {
	return i.confirmedAt
}

func (i *Interview) CompletedAt() *time.Time {
	return i.completedAt
}

// Confirm moves a Pending interview to Confirmed and records the time.
func (i *Interview) Confirm() error {
	status, err := i.status.Confirm()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	i.status = status
	i.confirmedAt = &now
	i.updatedAt = now
	return nil
}

// Cancel moves the interview to Cancelled, recording the mandatory reason.
func (i *Interview) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}
	status, err := i.status.Cancel()
	if err != nil {
		return err
	}
	i.status = status
	i.cancellationReason = reason
	i.updatedAt = time.Now().UTC()
	return nil
}

// Reschedule moves the interview to a new schedule and resets it to Pending.
// A prior confirmation is discarded: the provider must confirm again.
func (i *Interview) Reschedule(schedule kernel.Schedule, reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rescheduleReason")
	}
	if err := schedule.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("schedule", err)
	}
	status, err := i.status.Reschedule()
	if err != nil {
		return err
	}
	i.status = status
	i.schedule = schedule
	i.rescheduleReason = reason
	i.confirmedAt = nil
	i.updatedAt = time.Now().UTC()
	return nil
}

// Complete moves a Confirmed interview to Completed and records the time.
func (i *Interview) Complete() error {
	status, err := i.status.Complete()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	i.status = status
	i.completedAt = &now
	i.updatedAt = now
	return nil
}

// MarkHired marks the provider as hired through this interview.
// The interview must be Completed. Calling it again on an already hired
// interview is a no-op.
func (i *Interview) MarkHired() error {
	if err := i.status.ValidateMarkHired(); err != nil {
		return err
	}
	if i.isHired {
		return nil
	}
	i.isHired = true
	i.updatedAt = time.Now().UTC()
	return nil
}

// ValidateSubmitFeedback checks that the interview accepts feedback.
func (i *Interview) ValidateSubmitFeedback() error {
	return i.status.ValidateSubmitFeedback()
}

// IsEqual compares interviews by identity.
func (i *Interview) IsEqual(other *Interview) bool {
	return i.id.IsEqual(other.id)
}

// Validate checks that the Interview was created through a constructor.
func (i *Interview) Validate() error {
	return i.guard.Validate(ErrInterviewIsNotConstructed)
}
