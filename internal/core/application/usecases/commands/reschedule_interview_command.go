package commands

import (
	"errors"

	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

var (
	ErrRescheduleInterviewCommandIsNotConstructed = errors.New(
		"RescheduleInterviewCommand must be created via NewRescheduleInterviewCommand constructor",
	)
	ErrRescheduleReasonIsRequired = errors.New("reschedule reason is required")
)

// RescheduleInterviewCommand represents either party's request to move an
// interview to a new day and time, with a mandatory reason.
type RescheduleInterviewCommand struct { //nolint:recvcheck //using for validation
	interviewID kernel.UUID
	actor       actor.Actor
	schedule    kernel.Schedule
	reason      string

	guard guard.ConstructorGuard
}

// NewRescheduleInterviewCommand creates a command to reschedule an interview.
func NewRescheduleInterviewCommand(interviewID kernel.UUID, a actor.Actor,
	schedule kernel.Schedule, reason string) (RescheduleInterviewCommand, error) {
	command := RescheduleInterviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInterviewID(interviewID),
		command.setActor(a),
		command.setSchedule(schedule),
		command.setReason(reason),
	); err != nil {
		return RescheduleInterviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleInterviewCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleInterviewCommandIsNotConstructed)
}

// InterviewID returns the interview being rescheduled.
func (c RescheduleInterviewCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

// Actor returns the acting user.
func (c RescheduleInterviewCommand) Actor() actor.Actor {
	return c.actor
}

// Schedule returns the new interview day and time.
func (c RescheduleInterviewCommand) Schedule() kernel.Schedule {
	return c.schedule
}

// Reason returns the reschedule reason.
func (c RescheduleInterviewCommand) Reason() string {
	return c.reason
}

func (c *RescheduleInterviewCommand) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return err
	}
	c.interviewID = interviewID
	return nil
}

func (c *RescheduleInterviewCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}

func (c *RescheduleInterviewCommand) setSchedule(schedule kernel.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	c.schedule = schedule
	return nil
}

func (c *RescheduleInterviewCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRescheduleReasonIsRequired
	}
	c.reason = reason
	return nil
}
