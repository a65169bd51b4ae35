package cmd

import (
	"log/slog"
	"os"

	"riderspool/internal/adapters/out/notify"
	"riderspool/internal/adapters/out/postgres"
	"riderspool/internal/core/application/usecases/commands"
	"riderspool/internal/core/application/usecases/queries"
	"riderspool/internal/core/ports"
	"riderspool/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewLogNotifier(gormDB, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateInterviewCommandHandler() commands.CreateInterviewCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInterviewCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateConfirmInterviewCommandHandler() commands.ConfirmInterviewCommandHandler {
	var f commands.InterviewUoWFactory = FuncInterviewUoWFactory(func() commands.InterviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmInterviewCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelInterviewCommandHandler() commands.CancelInterviewCommandHandler {
	var f commands.InterviewUoWFactory = FuncInterviewUoWFactory(func() commands.InterviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelInterviewCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRescheduleInterviewCommandHandler() commands.RescheduleInterviewCommandHandler {
	var f commands.InterviewUoWFactory = FuncInterviewUoWFactory(func() commands.InterviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRescheduleInterviewCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteInterviewCommandHandler() commands.CompleteInterviewCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteInterviewCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkHiredCommandHandler() commands.MarkHiredCommandHandler {
	var f commands.InterviewUoWFactory = FuncInterviewUoWFactory(func() commands.InterviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkHiredCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	var f commands.FeedbackUoWFactory = FuncFeedbackUoWFactory(func() commands.FeedbackUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitFeedbackCommandHandler(f)
}

func (c *CompositionRoot) CreateGetInterviewsQueryHandler() queries.GetInterviewsQueryHandler {
	return queries.NewGetInterviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOfficeLocationsQueryHandler() queries.GetOfficeLocationsQueryHandler {
	return queries.NewGetOfficeLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProviderFeedbackQueryHandler() queries.GetProviderFeedbackQueryHandler {
	return queries.NewGetProviderFeedbackQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.notifier, c.logger)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

type FuncInterviewUoWFactory func() commands.InterviewUoW

func (f FuncInterviewUoWFactory) Create() commands.InterviewUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncCompletionUoWFactory func() commands.CompletionUoW

func (f FuncCompletionUoWFactory) Create() commands.CompletionUoW {
	return f()
}

type FuncFeedbackUoWFactory func() commands.FeedbackUoW

func (f FuncFeedbackUoWFactory) Create() commands.FeedbackUoW {
	return f()
}
