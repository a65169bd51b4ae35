package commands

import (
	"errors"

	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

var ErrConfirmInterviewCommandIsNotConstructed = errors.New(
	"ConfirmInterviewCommand must be created via NewConfirmInterviewCommand constructor",
)

// ConfirmInterviewCommand represents a provider's confirmation of a
// pending interview request.
type ConfirmInterviewCommand struct { //nolint:recvcheck //using for validation
	interviewID kernel.UUID
	actor       actor.Actor

	guard guard.ConstructorGuard
}

// NewConfirmInterviewCommand creates a command to confirm an interview.
func NewConfirmInterviewCommand(interviewID kernel.UUID, a actor.Actor) (ConfirmInterviewCommand, error) {
	command := ConfirmInterviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInterviewID(interviewID),
		command.setActor(a),
	); err != nil {
		return ConfirmInterviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmInterviewCommand) Validate() error {
	return c.guard.Validate(ErrConfirmInterviewCommandIsNotConstructed)
}

// InterviewID returns the interview being confirmed.
func (c ConfirmInterviewCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

// Actor returns the acting user.
func (c ConfirmInterviewCommand) Actor() actor.Actor {
	return c.actor
}

func (c *ConfirmInterviewCommand) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return err
	}
	c.interviewID = interviewID
	return nil
}

func (c *ConfirmInterviewCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}
