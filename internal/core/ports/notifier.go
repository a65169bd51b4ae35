package ports

import (
	"context"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
)

// EventType identifies the interview event a notification is about.
type EventType string

const (
	EventInterviewBooked      EventType = "interview_booked"
	EventInterviewConfirmed   EventType = "interview_confirmed"
	EventInterviewCancelled   EventType = "interview_cancelled"
	EventInterviewRescheduled EventType = "interview_rescheduled"
	EventInterviewReminder    EventType = "interview_reminder"
	EventProviderHired        EventType = "provider_hired"
)

// Notification is a request to tell a user about an interview event.
// The interview is a snapshot taken after the triggering transition
// committed.
type Notification struct {
	RecipientID kernel.UUID
	Event       EventType
	Interview   *interview.Interview
}

// Notifier delivers notifications to users. Delivery is best effort and
// at most one attempt: callers dispatch after their transaction commits,
// log failures, and never let them affect the committed transition.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}
