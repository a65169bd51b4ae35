package actor

import (
	"errors"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when using an improperly initialized Actor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated user performing an operation.
// It is a value object: identity plus role tag, resolved upstream by the
// identity provider and passed into the core by the transport layer.
//
// Example:
//
//	employer, err := actor.NewActor(employerID, actor.RoleEmployer)
//	if err != nil {
//	    // Handle validation error
//	}
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor with the given identity and role.
// Both must be valid; errors are aggregated.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	a := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return a, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role tag.
func (a Actor) Role() Role {
	return a.role
}

// IsEqual compares two actors by identity.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id)
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
