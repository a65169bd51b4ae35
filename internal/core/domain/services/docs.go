// Package services contains stateless domain services that coordinate
// rules spanning more than one aggregate: the interview access policy and
// the provider rating calculator.
package services
