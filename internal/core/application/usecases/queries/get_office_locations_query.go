package queries

import (
	"errors"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/guard"
)

var ErrGetOfficeLocationsQueryIsNotConstructed = errors.New(
	"GetOfficeLocationsQuery must be created via NewGetOfficeLocationsQuery constructor",
)

// GetOfficeLocationsQuery retrieves the active office location catalogue
// offered when booking an interview.
type GetOfficeLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOfficeLocationsQuery creates a query for the booking catalogue.
// This is a parameterless query that fetches all active locations.
func NewGetOfficeLocationsQuery() GetOfficeLocationsQuery {
	return GetOfficeLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOfficeLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOfficeLocationsQueryIsNotConstructed)
}

// GetOfficeLocationsQueryResponse is one catalogue entry.
type GetOfficeLocationsQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Address string
	City    string
}
