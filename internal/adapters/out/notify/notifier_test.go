package notify

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/ports"
	"riderspool/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// unreachableDB opens a lazy connection that fails on first use, so
// status-write failure paths can be exercised without a database.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		gorm_postgres.Open("host=127.0.0.1 port=1 user=riderspool dbname=riderspool sslmode=disable"),
		&gorm.Config{DisableAutomaticPing: true, Logger: logger.Discard},
	)
	require.NoError(t, err)
	return db
}

func testNotification(t *testing.T) ports.Notification {
	t.Helper()
	timeOfDay, err := kernel.ParseTimeOfDay("10:00")
	require.NoError(t, err)
	schedule, err := kernel.NewSchedule(time.Now().UTC().AddDate(0, 0, 2), timeOfDay)
	require.NoError(t, err)
	target, err := interview.NewInterview(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), schedule, nil, "")
	require.NoError(t, err)
	return ports.Notification{
		RecipientID: kernel.NewUUID(),
		Event:       ports.EventInterviewBooked,
		Interview:   target,
	}
}

func TestLogNotifier_Notify_ValidatesInput(t *testing.T) {
	n := NewLogNotifier(unreachableDB(t), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	t.Run("should reject missing recipient", func(t *testing.T) {
		notification := testNotification(t)
		notification.RecipientID = kernel.UUID{}
		require.ErrorIs(t, n.Notify(t.Context(), notification), errs.ErrValueIsRequired)
	})

	t.Run("should reject missing interview", func(t *testing.T) {
		notification := testNotification(t)
		notification.Interview = nil
		require.ErrorIs(t, n.Notify(t.Context(), notification), errs.ErrValueIsRequired)
	})

	t.Run("should reject missing event", func(t *testing.T) {
		notification := testNotification(t)
		notification.Event = ""
		require.ErrorIs(t, n.Notify(t.Context(), notification), errs.ErrValueIsRequired)
	})
}

func TestLogNotifier_MarkFailed_LogsStatusWriteFailure(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(unreachableDB(t), slog.New(slog.NewTextHandler(&buf, nil)))

	recordID := uuid.New()
	n.markFailed(t.Context(), recordID, errors.New("sms channel unavailable"))

	logged := buf.String()
	assert.Contains(t, logged, "notification status write failed")
	assert.Contains(t, logged, recordID.String())
}
