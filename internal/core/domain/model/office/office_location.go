// Package office contains the OfficeLocation aggregate: the catalogue of
// physical offices where interviews can be held.
package office

import (
	"errors"
	"time"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/errs"
	"riderspool/internal/pkg/guard"
)

var ErrOfficeLocationIsNotConstructed = errors.New(
	"office location is not constructed, use NewOfficeLocation or RestoreOfficeLocation")

// OfficeLocation is a bookable interview venue.
// Inactive locations stay on record for historical interviews but are
// excluded from the catalogue offered when booking.
type OfficeLocation struct {
	id      kernel.UUID
	name    string
	address string
	city    string

	isActive bool

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOfficeLocation registers a new active office location.
func NewOfficeLocation(id kernel.UUID, name string, address string, city string) (*OfficeLocation, error) {
	location := &OfficeLocation{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		location.setID(id),
		location.setName(name),
		location.setAddress(address),
		location.setCity(city),
	)
	if err != nil {
		return nil, err
	}

	location.isActive = true
	location.createdAt = time.Now().UTC()

	return location, nil
}

// RestoreOfficeLocation reconstructs an OfficeLocation from persistence.
func RestoreOfficeLocation(id kernel.UUID, name string, address string, city string,
	isActive bool, createdAt time.Time) (*OfficeLocation, error) {
	location := &OfficeLocation{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		location.setID(id),
		location.setName(name),
		location.setAddress(address),
		location.setCity(city),
	)
	if err != nil {
		return nil, err
	}

	location.isActive = isActive
	location.createdAt = createdAt

	return location, nil
}

func (o *OfficeLocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *OfficeLocation) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *OfficeLocation) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *OfficeLocation) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	o.city = city
	return nil
}

func (o *OfficeLocation) ID() kernel.UUID {
	return o.id
}

func (o *OfficeLocation) Name() string {
	return o.name
}

func (o *OfficeLocation) Address() string {
	return o.address
}

func (o *OfficeLocation) City() string {
	return o.city
}

func (o *OfficeLocation) IsActive() bool {
	return o.isActive
}

func (o *OfficeLocation) CreatedAt() time.Time {
	return o.createdAt
}

// Deactivate removes the location from the booking catalogue.
func (o *OfficeLocation) Deactivate() {
	o.isActive = false
}

// Activate returns the location to the booking catalogue.
func (o *OfficeLocation) Activate() {
	o.isActive = true
}

// IsEqual compares office locations by identity.
func (o *OfficeLocation) IsEqual(other *OfficeLocation) bool {
	return o.id.IsEqual(other.id)
}

// Validate checks that the OfficeLocation was created through a constructor.
func (o *OfficeLocation) Validate() error {
	return o.guard.Validate(ErrOfficeLocationIsNotConstructed)
}
