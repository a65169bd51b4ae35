package commands

import (
	"context"
	"log/slog"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/ports"
)

// notificationDispatcher sends post-commit notifications for command
// handlers. Dispatch is best effort: failures are logged and never
// returned, so a committed transition is never undone or reported as
// failed because a notification could not be delivered.
type notificationDispatcher struct {
	notifier ports.Notifier
	logger   *slog.Logger
}

func newNotificationDispatcher(notifier ports.Notifier, logger *slog.Logger) notificationDispatcher {
	return notificationDispatcher{
		notifier: notifier,
		logger:   logger,
	}
}

func (d notificationDispatcher) dispatch(ctx context.Context, recipientID kernel.UUID,
	event ports.EventType, i *interview.Interview) {
	err := d.notifier.Notify(ctx, ports.Notification{
		RecipientID: recipientID,
		Event:       event,
		Interview:   i,
	})
	if err != nil {
		d.logger.Warn("notification dispatch failed",
			"event", string(event),
			"recipient_id", recipientID.String(),
			"interview_id", i.ID().String(),
			"error", err)
	}
}

// otherParty resolves the notification recipient for cancel and
// reschedule: the party that did not initiate the action.
func otherParty(actorID kernel.UUID, i *interview.Interview) kernel.UUID {
	if actorID.IsEqual(i.EmployerID()) {
		return i.ProviderID()
	}
	return i.EmployerID()
}
