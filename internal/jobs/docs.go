// Package jobs provides scheduled background tasks for the interview system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. InterviewReminderJob - Runs daily to remind both parties of confirmed
// interviews scheduled for the next day.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, notifier, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reminder delivery is best effort: failures are logged per recipient and
// never retried within the run.
package jobs
