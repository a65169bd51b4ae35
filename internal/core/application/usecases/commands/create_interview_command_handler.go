package commands

import (
	"context"
	"log/slog"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/services"
	"riderspool/internal/core/ports"
	"riderspool/internal/pkg/errs"
)

// CreateInterviewCommandHandler handles interview booking.
// Verifies the provider exists and the office location (when given) is an
// active catalogue entry, then persists the interview in pending status
// and notifies the provider of the new request.
type CreateInterviewCommandHandler struct {
	uowFactory   BookingUoWFactory
	accessPolicy services.AccessPolicy
	dispatcher   notificationDispatcher
}

// NewCreateInterviewCommandHandler creates a handler for interview booking.
func NewCreateInterviewCommandHandler(uowFactory BookingUoWFactory,
	notifier ports.Notifier, logger *slog.Logger) CreateInterviewCommandHandler {
	return CreateInterviewCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewAccessPolicy(),
		dispatcher:   newNotificationDispatcher(notifier, logger),
	}
}

// Handle processes the booking command.
// Any employer may book; the schedule is checked against the booking grace
// window by the aggregate constructor. The provider is notified after the
// transaction commits.
func (h CreateInterviewCommandHandler) Handle(ctx context.Context, cmd CreateInterviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessPolicy.AuthorizeCreate(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ProviderRepository().Get(ctx, cmd.ProviderID()); err != nil {
		return err
	}

	if officeID := cmd.OfficeLocationID(); officeID != nil {
		location, err := uow.OfficeLocationRepository().Get(ctx, *officeID)
		if err != nil {
			return err
		}
		if !location.IsActive() {
			return errs.NewValueIsInvalidError("officeLocationID")
		}
	}

	newInterview, err := interview.NewInterview(cmd.InterviewID(), cmd.Actor().ID(),
		cmd.ProviderID(), cmd.Schedule(), cmd.OfficeLocationID(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.InterviewRepository().Add(ctx, newInterview); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.dispatch(ctx, newInterview.ProviderID(), ports.EventInterviewBooked, newInterview)
	return nil
}
