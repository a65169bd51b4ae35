package jobs

import (
	"context"
	"log/slog"
	"time"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/ports"

	uuidlib "github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// reminderCronSpec fires once a day at 06:00.
const reminderCronSpec = "0 0 6 * * *"

// InterviewReminderJob reminds employers and providers about confirmed
// interviews scheduled for the next day.
type InterviewReminderJob struct {
	db       *gorm.DB
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewInterviewReminderJob creates a new job for interview reminders.
func NewInterviewReminderJob(db *gorm.DB, notifier ports.Notifier, logger *slog.Logger) *InterviewReminderJob {
	return &InterviewReminderJob{
		db:       db,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "interview_reminder_job"),
	}
}

// Start begins the interview reminder job.
func (j *InterviewReminderJob) Start() error {
	_, err := j.cron.AddFunc(reminderCronSpec, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Interview reminder job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Interview reminder job started (running daily)")
	return nil
}

// Stop stops the interview reminder job.
func (j *InterviewReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Interview reminder job stopped")
}

// Run sends a reminder to both parties of every confirmed interview
// scheduled for tomorrow. Delivery failures are logged per recipient and do
// not abort the run.
func (j *InterviewReminderJob) Run(ctx context.Context) error {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour)

	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT
			id,
			employer_id,
			provider_id,
			day,
			hour,
			minute,
			notes,
			created_at,
			updated_at,
			confirmed_at
		FROM interviews
		WHERE status = ? AND day = ?
		ORDER BY hour, minute
	`, int(interview.StatusConfirmed), tomorrow).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, employerID, providerID uuidlib.UUID
		var day, createdAt, updatedAt time.Time
		var confirmedAt *time.Time
		var hour, minute int
		var notes string

		err = rows.Scan(&id, &employerID, &providerID, &day, &hour, &minute,
			&notes, &createdAt, &updatedAt, &confirmedAt)
		if err != nil {
			return err
		}

		upcoming, restoreErr := j.restoreInterview(id, employerID, providerID,
			day, hour, minute, notes, createdAt, updatedAt, confirmedAt)
		if restoreErr != nil {
			return restoreErr
		}

		j.remind(ctx, upcoming.EmployerID(), upcoming)
		j.remind(ctx, upcoming.ProviderID(), upcoming)
	}

	return rows.Err()
}

func (j *InterviewReminderJob) restoreInterview(
	id uuidlib.UUID, employerID uuidlib.UUID, providerID uuidlib.UUID,
	day time.Time, hour int, minute int, notes string,
	createdAt time.Time, updatedAt time.Time, confirmedAt *time.Time,
) (*interview.Interview, error) {
	interviewID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	employer, err := kernel.UUIDFromBytes(employerID[:])
	if err != nil {
		return nil, err
	}

	provider, err := kernel.UUIDFromBytes(providerID[:])
	if err != nil {
		return nil, err
	}

	timeOfDay, err := kernel.NewTimeOfDay(hour, minute)
	if err != nil {
		return nil, err
	}

	schedule, err := kernel.NewSchedule(day, timeOfDay)
	if err != nil {
		return nil, err
	}

	return interview.RestoreInterview(interviewID, employer, provider, schedule, nil,
		interview.StatusConfirmed, notes, "", "", false, createdAt, updatedAt, confirmedAt, nil)
}

func (j *InterviewReminderJob) remind(ctx context.Context, recipientID kernel.UUID,
	upcoming *interview.Interview) {
	err := j.notifier.Notify(ctx, ports.Notification{
		RecipientID: recipientID,
		Event:       ports.EventInterviewReminder,
		Interview:   upcoming,
	})
	if err != nil {
		j.logger.WarnContext(ctx, "interview reminder dispatch failed",
			"recipient_id", recipientID.String(),
			"interview_id", upcoming.ID().String(),
			"error", err)
	}
}
