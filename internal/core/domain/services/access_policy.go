package services

import (
	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/pkg/errs"
)

// AccessPolicy is a domain service deciding which actor may perform which
// interview lifecycle action.
//
// Authorization rules:
//   - create: any employer
//   - confirm: the interview's provider
//   - cancel, reschedule: either party of the interview
//   - complete, mark hired, submit feedback: the interview's employer
//
// The policy is a pure predicate over the actor and an interview snapshot;
// it never mutates either.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// AuthorizeCreate checks that the actor may book interviews.
func (p AccessPolicy) AuthorizeCreate(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.Role().IsEmployer() {
		return errs.NewPermissionDeniedError(interview.ActionCreate.String(),
			"only employers may book interviews")
	}
	return nil
}

// Authorize checks that the actor may perform the given action on the
// given interview.
func (p AccessPolicy) Authorize(a actor.Actor, action interview.Action, i *interview.Interview) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := i.Validate(); err != nil {
		return err
	}

	switch action {
	case interview.ActionConfirm:
		if !p.isProvider(a, i) {
			return errs.NewPermissionDeniedError(action.String(),
				"only the interview's provider may confirm")
		}
	case interview.ActionCancel, interview.ActionReschedule:
		if !p.isEmployer(a, i) && !p.isProvider(a, i) {
			return errs.NewPermissionDeniedError(action.String(),
				"only a party of the interview may perform this action")
		}
	case interview.ActionComplete, interview.ActionMarkHired, interview.ActionSubmitFeedback:
		if !p.isEmployer(a, i) {
			return errs.NewPermissionDeniedError(action.String(),
				"only the interview's employer may perform this action")
		}
	default:
		return errs.NewValueIsInvalidError("action")
	}
	return nil
}

func (p AccessPolicy) isEmployer(a actor.Actor, i *interview.Interview) bool {
	return a.Role().IsEmployer() && a.ID().IsEqual(i.EmployerID())
}

func (p AccessPolicy) isProvider(a actor.Actor, i *interview.Interview) bool {
	return a.Role().IsProvider() && a.ID().IsEqual(i.ProviderID())
}
