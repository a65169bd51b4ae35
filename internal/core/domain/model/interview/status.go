package interview

import (
	"riderspool/internal/pkg/errs"
)

// Action identifies an interview lifecycle operation.
// It is used by the authorization policy and carried inside
// InvalidTransition and PermissionDenied errors.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionCreate books a new interview (employer).
	ActionCreate

	// ActionConfirm confirms a pending interview (provider).
	ActionConfirm

	// ActionCancel cancels a non-terminal interview (either party).
	ActionCancel

	// ActionReschedule moves a non-terminal interview to a new schedule (either party).
	ActionReschedule

	// ActionComplete marks a confirmed interview as held (employer).
	ActionComplete

	// ActionMarkHired marks the provider of a completed interview as hired (employer).
	ActionMarkHired

	// ActionSubmitFeedback records the employer's feedback for a completed interview.
	ActionSubmitFeedback
)

// String returns the action's name as used in error messages.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	case ActionReschedule:
		return "reschedule"
	case ActionComplete:
		return "complete"
	case ActionMarkHired:
		return "mark hired"
	case ActionSubmitFeedback:
		return "submit feedback"
	default:
		return "unknown"
	}
}

// Status represents the lifecycle state of an interview.
// It implements a state machine with defined transitions:
//
//	Pending ──confirm──> Confirmed ──complete──> Completed
//	   ^                     │
//	   └─────reschedule──────┘
//	(cancel is allowed from Pending and Confirmed)
//
// Cancelled and Completed are terminal for cancel/reschedule purposes;
// Completed additionally permits the mark-hired and submit-feedback actions.
//
// Rescheduled exists as a declared label for compatibility with stored data,
// but no transition ever leaves an interview at rest in that status: a
// reschedule always resets the interview to Pending.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the interview awaits the
	// provider's confirmation. A reschedule also resets into this status.
	StatusPending

	// StatusConfirmed indicates the provider has confirmed attendance.
	StatusConfirmed

	// StatusCompleted indicates the interview took place.
	// Terminal for cancel/reschedule; mark-hired and feedback remain possible.
	StatusCompleted

	// StatusCancelled indicates either party cancelled the interview.
	// Terminal; a cancellation reason is always recorded.
	StatusCancelled

	// StatusRescheduled is a transient label only; see the Status doc.
	StatusRescheduled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "Unknown",
		StatusPending:     "Pending",
		StatusConfirmed:   "Confirmed",
		StatusCompleted:   "Completed",
		StatusCancelled:   "Cancelled",
		StatusRescheduled: "Rescheduled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:     "Pending",
		StatusConfirmed:   "Confirmed",
		StatusCompleted:   "Completed",
		StatusCancelled:   "Cancelled",
		StatusRescheduled: "Rescheduled",
	}
}

// StatusFromString parses a status name as produced by String.
// Returns an error for unknown names and for the Unknown label itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate checks if the Status value is valid.
// Used to verify Status values arriving from persistence or external sources.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// isTerminal reports whether the status rejects cancel and reschedule.
func (s Status) isTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Confirm transitions the status to Confirmed.
// Only Pending interviews can be confirmed.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidTransitionError(ActionConfirm.String(), s.String())
	}
	return StatusConfirmed, nil
}

// Cancel transitions the status to Cancelled.
// Cancelled and Completed interviews cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s.isTerminal() {
		return 0, errs.NewInvalidTransitionError(ActionCancel.String(), s.String())
	}
	return StatusCancelled, nil
}

// Reschedule resets the status to Pending.
// Cancelled and Completed interviews cannot be rescheduled. The interview
// lands back in Pending and must be confirmed again.
func (s Status) Reschedule() (Status, error) {
	if s.isTerminal() {
		return 0, errs.NewInvalidTransitionError(ActionReschedule.String(), s.String())
	}
	return StatusPending, nil
}

// Complete transitions the status to Completed.
// Only Confirmed interviews can be completed.
func (s Status) Complete() (Status, error) {
	if s != StatusConfirmed {
		return 0, errs.NewInvalidTransitionError(ActionComplete.String(), s.String())
	}
	return StatusCompleted, nil
}

// ValidateMarkHired checks that the status permits marking the provider hired.
// Only Completed interviews qualify.
func (s Status) ValidateMarkHired() error {
	if s != StatusCompleted {
		return errs.NewInvalidTransitionError(ActionMarkHired.String(), s.String())
	}
	return nil
}

// ValidateSubmitFeedback checks that the status permits feedback submission.
// Only Completed interviews qualify.
func (s Status) ValidateSubmitFeedback() error {
	if s != StatusCompleted {
		return errs.NewInvalidTransitionError(ActionSubmitFeedback.String(), s.String())
	}
	return nil
}
