// Package provider contains the Provider aggregate: a service provider's
// profile with the interview counters and aggregate rating maintained by
// the interview lifecycle.
package provider

import (
	"errors"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/errs"
	"riderspool/internal/pkg/guard"
)

const (
	ProviderMinRating = 0.0
	ProviderMaxRating = 5.0
)

var ErrProviderIsNotConstructed = errors.New(
	"provider is not constructed, use NewProvider or RestoreProvider")

// Provider is a service provider profile. Its ID matches the platform
// user ID, so interviews reference providers directly by user.
type Provider struct {
	id       kernel.UUID
	fullName string
	category string

	rating          float64
	totalInterviews int

	guard guard.ConstructorGuard
}

// NewProvider registers a provider profile with no interview history.
func NewProvider(id kernel.UUID, fullName string, category string) (*Provider, error) {
	provider := &Provider{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		provider.setID(id),
		provider.setFullName(fullName),
		provider.setCategory(category),
	)
	if err != nil {
		return nil, err
	}

	return provider, nil
}

// RestoreProvider reconstructs a Provider from persistence.
func RestoreProvider(id kernel.UUID, fullName string, category string,
	rating float64, totalInterviews int) (*Provider, error) {
	provider := &Provider{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		provider.setID(id),
		provider.setFullName(fullName),
		provider.setCategory(category),
		provider.setRating(rating),
		provider.setTotalInterviews(totalInterviews),
	)
	if err != nil {
		return nil, err
	}

	return provider, nil
}

func (p *Provider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	p.id = id
	return nil
}

func (p *Provider) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	p.fullName = fullName
	return nil
}

func (p *Provider) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Provider) setRating(rating float64) error {
	if rating < ProviderMinRating || rating > ProviderMaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, ProviderMinRating, ProviderMaxRating)
	}
	p.rating = rating
	return nil
}

func (p *Provider) setTotalInterviews(totalInterviews int) error {
	if totalInterviews < 0 {
		return errs.NewValueIsInvalidError("totalInterviews")
	}
	p.totalInterviews = totalInterviews
	return nil
}

func (p *Provider) ID() kernel.UUID {
	return p.id
}

func (p *Provider) FullName() string {
	return p.fullName
}

func (p *Provider) Category() string {
	return p.category
}

func (p *Provider) Rating() float64 {
	return p.rating
}

func (p *Provider) TotalInterviews() int {
	return p.totalInterviews
}

// RecordCompletedInterview increments the completed interview counter.
func (p *Provider) RecordCompletedInterview() {
	p.totalInterviews++
}

// UpdateRating replaces the aggregate rating with a freshly computed one.
func (p *Provider) UpdateRating(rating float64) error {
	return p.setRating(rating)
}

// IsEqual compares providers by identity.
func (p *Provider) IsEqual(other *Provider) bool {
	return p.id.IsEqual(other.id)
}

// Validate checks that the Provider was created through a constructor.
func (p *Provider) Validate() error {
	return p.guard.Validate(ErrProviderIsNotConstructed)
}
