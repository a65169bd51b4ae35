package commands

import (
	"errors"

	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

var ErrCompleteInterviewCommandIsNotConstructed = errors.New(
	"CompleteInterviewCommand must be created via NewCompleteInterviewCommand constructor",
)

// CompleteInterviewCommand represents the employer's record that a
// confirmed interview took place.
type CompleteInterviewCommand struct { //nolint:recvcheck //using for validation
	interviewID kernel.UUID
	actor       actor.Actor

	guard guard.ConstructorGuard
}

// NewCompleteInterviewCommand creates a command to complete an interview.
func NewCompleteInterviewCommand(interviewID kernel.UUID, a actor.Actor) (CompleteInterviewCommand, error) {
	command := CompleteInterviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInterviewID(interviewID),
		command.setActor(a),
	); err != nil {
		return CompleteInterviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteInterviewCommand) Validate() error {
	return c.guard.Validate(ErrCompleteInterviewCommandIsNotConstructed)
}

// InterviewID returns the interview being completed.
func (c CompleteInterviewCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

// Actor returns the acting user.
func (c CompleteInterviewCommand) Actor() actor.Actor {
	return c.actor
}

func (c *CompleteInterviewCommand) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return err
	}
	c.interviewID = interviewID
	return nil
}

func (c *CompleteInterviewCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}
