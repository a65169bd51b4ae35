package commands

import (
	"errors"

	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

var ErrMarkHiredCommandIsNotConstructed = errors.New(
	"MarkHiredCommand must be created via NewMarkHiredCommand constructor",
)

// MarkHiredCommand represents the employer's decision to hire the
// provider after a completed interview.
type MarkHiredCommand struct { //nolint:recvcheck //using for validation
	interviewID kernel.UUID
	actor       actor.Actor

	guard guard.ConstructorGuard
}

// NewMarkHiredCommand creates a command to mark a provider as hired.
func NewMarkHiredCommand(interviewID kernel.UUID, a actor.Actor) (MarkHiredCommand, error) {
	command := MarkHiredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInterviewID(interviewID),
		command.setActor(a),
	); err != nil {
		return MarkHiredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkHiredCommand) Validate() error {
	return c.guard.Validate(ErrMarkHiredCommandIsNotConstructed)
}

// InterviewID returns the interview whose provider is being hired.
func (c MarkHiredCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

// Actor returns the acting user.
func (c MarkHiredCommand) Actor() actor.Actor {
	return c.actor
}

func (c *MarkHiredCommand) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return err
	}
	c.interviewID = interviewID
	return nil
}

func (c *MarkHiredCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}
