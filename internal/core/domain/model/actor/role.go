// Package actor defines the acting user of an operation: its identity and
// an explicit role tag. Registration, authentication, and session handling
// live in the identity provider; this package only models what the core
// needs to authorize interview actions.
package actor

import (
	"fmt"

	"riderspool/internal/pkg/errs"
)

// Role is the enumerated type of a marketplace user.
// Authorization decisions switch over this tag; there is no subtype
// hierarchy and no implicit flag combination.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleEmployer is a company posting jobs and requesting interviews.
	RoleEmployer

	// RoleProvider is a service provider (rider/driver) being interviewed.
	RoleProvider

	// RoleAdmin is a platform administrator with read access to all records.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleEmployer: "Employer",
		RoleProvider: "Provider",
		RoleAdmin:    "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleEmployer: "Employer",
		RoleProvider: "Provider",
		RoleAdmin:    "Admin",
	}
}

// RoleFromString parses a role from its lowercase wire representation
// ("employer", "provider", "admin").
func RoleFromString(s string) (Role, error) {
	switch s {
	case "employer":
		return RoleEmployer, nil
	case "provider":
		return RoleProvider, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks if the Role value is valid.
// Valid roles are Employer, Provider, and Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer; safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsEmployer reports whether the role is Employer.
func (r Role) IsEmployer() bool {
	return r == RoleEmployer
}

// IsProvider reports whether the role is Provider.
func (r Role) IsProvider() bool {
	return r == RoleProvider
}

// IsAdmin reports whether the role is Admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
