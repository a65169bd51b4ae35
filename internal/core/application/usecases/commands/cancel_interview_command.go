package commands

import (
	"errors"

	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

var (
	ErrCancelInterviewCommandIsNotConstructed = errors.New(
		"CancelInterviewCommand must be created via NewCancelInterviewCommand constructor",
	)
	ErrCancellationReasonIsRequired = errors.New("cancellation reason is required")
)

// CancelInterviewCommand represents either party's request to cancel an
// interview, with a mandatory reason.
type CancelInterviewCommand struct { //nolint:recvcheck //using for validation
	interviewID kernel.UUID
	actor       actor.Actor
	reason      string

	guard guard.ConstructorGuard
}

// NewCancelInterviewCommand creates a command to cancel an interview.
func NewCancelInterviewCommand(interviewID kernel.UUID, a actor.Actor, reason string) (CancelInterviewCommand, error) {
	command := CancelInterviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInterviewID(interviewID),
		command.setActor(a),
		command.setReason(reason),
	); err != nil {
		return CancelInterviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelInterviewCommand) Validate() error {
	return c.guard.Validate(ErrCancelInterviewCommandIsNotConstructed)
}

// InterviewID returns the interview being cancelled.
func (c CancelInterviewCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

// Actor returns the acting user.
func (c CancelInterviewCommand) Actor() actor.Actor {
	return c.actor
}

// Reason returns the cancellation reason.
func (c CancelInterviewCommand) Reason() string {
	return c.reason
}

func (c *CancelInterviewCommand) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return err
	}
	c.interviewID = interviewID
	return nil
}

func (c *CancelInterviewCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}

func (c *CancelInterviewCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancellationReasonIsRequired
	}
	c.reason = reason
	return nil
}
