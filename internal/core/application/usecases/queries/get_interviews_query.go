// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projections straight
// from the database.
package queries

import (
	"errors"
	"time"

	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

var ErrGetInterviewsQueryIsNotConstructed = errors.New(
	"GetInterviewsQuery must be created via NewGetInterviewsQuery constructor",
)

// GetInterviewsQuery retrieves the interviews visible to the acting user:
// employers and providers see the interviews they are a party of, admins
// see everything. An optional status narrows the listing further.
type GetInterviewsQuery struct {
	actor  actor.Actor
	status *interview.Status

	guard guard.ConstructorGuard
}

// NewGetInterviewsQuery creates a query scoped to the acting user.
func NewGetInterviewsQuery(a actor.Actor) (GetInterviewsQuery, error) {
	if err := a.Validate(); err != nil {
		return GetInterviewsQuery{}, err
	}
	return GetInterviewsQuery{
		actor: a,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewGetInterviewsQueryWithStatus creates a query scoped to the acting user
// and restricted to interviews in the given status.
func NewGetInterviewsQueryWithStatus(a actor.Actor, status interview.Status) (GetInterviewsQuery, error) {
	query, err := NewGetInterviewsQuery(a)
	if err != nil {
		return GetInterviewsQuery{}, err
	}
	if err := status.Validate(); err != nil {
		return GetInterviewsQuery{}, err
	}
	query.status = &status
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInterviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetInterviewsQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetInterviewsQuery) Actor() actor.Actor {
	return q.actor
}

// Status returns the optional status filter, nil when the listing spans all
// statuses.
func (q GetInterviewsQuery) Status() *interview.Status {
	return q.status
}

// GetInterviewsQueryResponse is one interview row in the listing.
type GetInterviewsQueryResponse struct {
	ID               kernel.UUID
	EmployerID       kernel.UUID
	ProviderID       kernel.UUID
	OfficeLocationID *kernel.UUID
	Day              time.Time
	TimeOfDay        string
	Status           string
	IsHired          bool
	CreatedAt        time.Time
}
