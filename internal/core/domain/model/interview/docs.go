// Package interview contains the Interview aggregate root and its lifecycle
// state machine, together with the InterviewFeedback entity.
//
// An Interview is a scheduled meeting between one employer and one provider
// at an office location. It is created in Pending status and mutated only
// through the defined transitions: Confirm, Cancel, Reschedule, Complete,
// and MarkHired. Interviews are never hard-deleted; cancelled and completed
// interviews remain for reporting.
//
// InterviewFeedback is the employer's one-time evaluation of a completed
// interview. It is immutable after creation and feeds the provider's
// aggregate rating.
package interview
