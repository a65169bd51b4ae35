package notify

import (
	"context"
	"log/slog"
	"time"

	"riderspool/internal/core/ports"
	"riderspool/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogNotifier records each notification in the notifications table and
// delivers it as a structured log line. It satisfies ports.Notifier.
//
// Delivery is intentionally simple: the row is the durable artifact, the
// log line stands in for the outbound channel. A real channel (SMS, push)
// plugs in by replacing the deliver step and keeping the record lifecycle.
type LogNotifier struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewLogNotifier creates a notifier writing records through the given
// database connection.
func NewLogNotifier(db *gorm.DB, logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		db:     db,
		logger: logger.With("component", "notifier"),
	}
}

// Notify records the notification and delivers it. The record starts as
// pending, then moves to sent, or to failed with the error message kept on
// the row.
func (n *LogNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	if err := notification.RecipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientID", err)
	}
	if notification.Interview == nil {
		return errs.NewValueIsRequiredError("interview")
	}
	if notification.Event == "" {
		return errs.NewValueIsRequiredError("event")
	}

	record := NotificationDTO{
		ID:          uuid.New(),
		RecipientID: notification.RecipientID.Bytes(),
		InterviewID: notification.Interview.ID().Bytes(),
		Event:       string(notification.Event),
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := n.db.WithContext(ctx).Create(&record).Error; err != nil {
		return err
	}

	if err := n.deliver(ctx, notification); err != nil {
		n.markFailed(ctx, record.ID, err)
		return err
	}

	now := time.Now().UTC()
	return n.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{"status": StatusSent, "sent_at": &now}).Error
}

// markFailed moves the record to failed, keeping the delivery error on the
// row. A failed status write is logged; the delivery error still reaches the
// caller.
func (n *LogNotifier) markFailed(ctx context.Context, recordID uuid.UUID, deliverErr error) {
	err := n.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", recordID).
		Updates(map[string]any{"status": StatusFailed, "error_message": deliverErr.Error()}).Error
	if err != nil {
		n.logger.WarnContext(ctx, "notification status write failed",
			"notification_id", recordID.String(),
			"status", StatusFailed,
			"error", err)
	}
}

func (n *LogNotifier) deliver(_ context.Context, notification ports.Notification) error {
	n.logger.Info("notification delivered",
		"event", string(notification.Event),
		"recipient_id", notification.RecipientID.String(),
		"interview_id", notification.Interview.ID().String(),
		"interview_status", notification.Interview.Status().String(),
		"scheduled_at", notification.Interview.Schedule().At())
	return nil
}
