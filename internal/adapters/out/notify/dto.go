// Package notify implements the notifier port. Each dispatched notification
// is recorded as a database row so delivery can be audited and retried by
// operational tooling; the in-process delivery itself is a log line.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Notification delivery states.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// NotificationDTO represents the database structure for recorded
// notifications.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index"`
	InterviewID uuid.UUID `gorm:"type:uuid;index"`
	Event       string
	Status      string `gorm:"index"`

	ErrorMessage string

	CreatedAt time.Time
	SentAt    *time.Time
}

// TableName specifies the database table name for notification records.
func (NotificationDTO) TableName() string {
	return "notifications"
}
