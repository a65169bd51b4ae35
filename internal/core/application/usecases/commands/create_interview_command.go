package commands

import (
	"errors"

	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

var ErrCreateInterviewCommandIsNotConstructed = errors.New(
	"CreateInterviewCommand must be created via NewCreateInterviewCommand constructor",
)

// CreateInterviewCommand represents an employer's request to book an
// interview with a provider at a scheduled day and time, optionally at a
// catalogued office location.
type CreateInterviewCommand struct { //nolint:recvcheck //using for validation
	interviewID      kernel.UUID
	actor            actor.Actor
	providerID       kernel.UUID
	officeLocationID *kernel.UUID
	schedule         kernel.Schedule
	notes            string

	guard guard.ConstructorGuard
}

// NewCreateInterviewCommand creates a command to book a new interview.
// Validates the identifiers, the acting user, and the schedule value.
func NewCreateInterviewCommand(interviewID kernel.UUID, a actor.Actor, providerID kernel.UUID,
	officeLocationID *kernel.UUID, schedule kernel.Schedule, notes string) (CreateInterviewCommand, error) {
	command := CreateInterviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInterviewID(interviewID),
		command.setActor(a),
		command.setProviderID(providerID),
		command.setOfficeLocationID(officeLocationID),
		command.setSchedule(schedule),
	); err != nil {
		return CreateInterviewCommand{}, err
	}

	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInterviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateInterviewCommandIsNotConstructed)
}

// InterviewID returns the identifier chosen for the new interview.
func (c CreateInterviewCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

// Actor returns the acting user.
func (c CreateInterviewCommand) Actor() actor.Actor {
	return c.actor
}

// ProviderID returns the provider being interviewed.
func (c CreateInterviewCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// OfficeLocationID returns the selected office location, if any.
func (c CreateInterviewCommand) OfficeLocationID() *kernel.UUID {
	return c.officeLocationID
}

// Schedule returns the requested interview day and time.
func (c CreateInterviewCommand) Schedule() kernel.Schedule {
	return c.schedule
}

// Notes returns the employer's free-text notes.
func (c CreateInterviewCommand) Notes() string {
	return c.notes
}

func (c *CreateInterviewCommand) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return err
	}
	c.interviewID = interviewID
	return nil
}

func (c *CreateInterviewCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}

func (c *CreateInterviewCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}
	c.providerID = providerID
	return nil
}

func (c *CreateInterviewCommand) setOfficeLocationID(officeLocationID *kernel.UUID) error {
	if officeLocationID != nil {
		if err := officeLocationID.Validate(); err != nil {
			return err
		}
	}
	c.officeLocationID = officeLocationID
	return nil
}

func (c *CreateInterviewCommand) setSchedule(schedule kernel.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	c.schedule = schedule
	return nil
}
