// Package http exposes the interview lifecycle over a REST API.
// The server trusts the gateway in front of it for authentication and reads
// the acting user from the X-User-Id and X-User-Role headers.
package http

import (
	"errors"
	"net/http"
	"time"

	"riderspool/internal/core/application/usecases/commands"
	"riderspool/internal/core/application/usecases/queries"
	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createInterviewHandler     commands.CreateInterviewCommandHandler
	confirmInterviewHandler    commands.ConfirmInterviewCommandHandler
	cancelInterviewHandler     commands.CancelInterviewCommandHandler
	rescheduleInterviewHandler commands.RescheduleInterviewCommandHandler
	completeInterviewHandler   commands.CompleteInterviewCommandHandler
	markHiredHandler           commands.MarkHiredCommandHandler
	submitFeedbackHandler      commands.SubmitFeedbackCommandHandler

	getInterviewsHandler       queries.GetInterviewsQueryHandler
	getOfficeLocationsHandler  queries.GetOfficeLocationsQueryHandler
	getProviderFeedbackHandler queries.GetProviderFeedbackQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createInterviewHandler commands.CreateInterviewCommandHandler,
	confirmInterviewHandler commands.ConfirmInterviewCommandHandler,
	cancelInterviewHandler commands.CancelInterviewCommandHandler,
	rescheduleInterviewHandler commands.RescheduleInterviewCommandHandler,
	completeInterviewHandler commands.CompleteInterviewCommandHandler,
	markHiredHandler commands.MarkHiredCommandHandler,
	submitFeedbackHandler commands.SubmitFeedbackCommandHandler,
	getInterviewsHandler queries.GetInterviewsQueryHandler,
	getOfficeLocationsHandler queries.GetOfficeLocationsQueryHandler,
	getProviderFeedbackHandler queries.GetProviderFeedbackQueryHandler,
) *Server {
	return &Server{
		createInterviewHandler:     createInterviewHandler,
		confirmInterviewHandler:    confirmInterviewHandler,
		cancelInterviewHandler:     cancelInterviewHandler,
		rescheduleInterviewHandler: rescheduleInterviewHandler,
		completeInterviewHandler:   completeInterviewHandler,
		markHiredHandler:           markHiredHandler,
		submitFeedbackHandler:      submitFeedbackHandler,
		getInterviewsHandler:       getInterviewsHandler,
		getOfficeLocationsHandler:  getOfficeLocationsHandler,
		getProviderFeedbackHandler: getProviderFeedbackHandler,
	}
}

// RegisterRoutes attaches all interview routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/interviews", s.CreateInterview)
	api.GET("/interviews", s.GetInterviews)
	api.POST("/interviews/:id/confirm", s.ConfirmInterview)
	api.POST("/interviews/:id/cancel", s.CancelInterview)
	api.POST("/interviews/:id/reschedule", s.RescheduleInterview)
	api.POST("/interviews/:id/complete", s.CompleteInterview)
	api.POST("/interviews/:id/hire", s.MarkHired)
	api.POST("/interviews/:id/feedback", s.SubmitFeedback)

	api.GET("/office-locations", s.GetOfficeLocations)
	api.GET("/providers/:id/feedback", s.GetProviderFeedback)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateInterviewRequest is the body for booking an interview.
type CreateInterviewRequest struct {
	ProviderID       string  `json:"provider_id"`
	OfficeLocationID *string `json:"office_location_id,omitempty"`
	Day              string  `json:"day"`
	TimeOfDay        string  `json:"time_of_day"`
	Notes            string  `json:"notes,omitempty"`
}

// CreateInterviewResponse returns the identifier of the booked interview.
type CreateInterviewResponse struct {
	ID string `json:"id"`
}

// CancelInterviewRequest carries the mandatory cancellation reason.
type CancelInterviewRequest struct {
	Reason string `json:"reason"`
}

// RescheduleInterviewRequest carries the new schedule and the mandatory reason.
type RescheduleInterviewRequest struct {
	Day       string `json:"day"`
	TimeOfDay string `json:"time_of_day"`
	Reason    string `json:"reason"`
}

// SubmitFeedbackRequest is the body for recording interview feedback.
type SubmitFeedbackRequest struct {
	Rating         int    `json:"rating"`
	Comments       string `json:"comments,omitempty"`
	Strengths      string `json:"strengths,omitempty"`
	Improvements   string `json:"improvements,omitempty"`
	WouldHireAgain bool   `json:"would_hire_again"`
}

// SubmitFeedbackResponse returns the identifier of the recorded feedback.
type SubmitFeedbackResponse struct {
	ID string `json:"id"`
}

// InterviewResponse is one interview in the listing.
type InterviewResponse struct {
	ID               string    `json:"id"`
	EmployerID       string    `json:"employer_id"`
	ProviderID       string    `json:"provider_id"`
	OfficeLocationID *string   `json:"office_location_id,omitempty"`
	Day              string    `json:"day"`
	TimeOfDay        string    `json:"time_of_day"`
	Status           string    `json:"status"`
	IsHired          bool      `json:"is_hired"`
	CreatedAt        time.Time `json:"created_at"`
}

// OfficeLocationResponse is one catalogue entry.
type OfficeLocationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// FeedbackResponse is one feedback entry for a provider.
type FeedbackResponse struct {
	ID             string    `json:"id"`
	InterviewID    string    `json:"interview_id"`
	Rating         int       `json:"rating"`
	Comments       string    `json:"comments,omitempty"`
	Strengths      string    `json:"strengths,omitempty"`
	Improvements   string    `json:"improvements,omitempty"`
	WouldHireAgain bool      `json:"would_hire_again"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateInterview handles POST /api/v1/interviews.
func (s *Server) CreateInterview(ctx echo.Context) error {
	a, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req CreateInterviewRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}

	providerID, err := kernel.UUIDFromString(req.ProviderID)
	if err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("provider_id"))
	}

	var officeLocationID *kernel.UUID
	if req.OfficeLocationID != nil {
		officeID, officeErr := kernel.UUIDFromString(*req.OfficeLocationID)
		if officeErr != nil {
			return errorJSON(ctx, errs.NewValueIsInvalidError("office_location_id"))
		}
		officeLocationID = &officeID
	}

	schedule, err := parseSchedule(req.Day, req.TimeOfDay)
	if err != nil {
		return errorJSON(ctx, err)
	}

	interviewID := kernel.NewUUID()
	cmd, err := commands.NewCreateInterviewCommand(
		interviewID, a, providerID, officeLocationID, schedule, req.Notes)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createInterviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateInterviewResponse{ID: interviewID.String()})
}

// ConfirmInterview handles POST /api/v1/interviews/:id/confirm.
func (s *Server) ConfirmInterview(ctx echo.Context) error {
	a, interviewID, err := actorAndInterviewID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewConfirmInterviewCommand(interviewID, a)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.confirmInterviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelInterview handles POST /api/v1/interviews/:id/cancel.
func (s *Server) CancelInterview(ctx echo.Context) error {
	a, interviewID, err := actorAndInterviewID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req CancelInterviewRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewCancelInterviewCommand(interviewID, a, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.cancelInterviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RescheduleInterview handles POST /api/v1/interviews/:id/reschedule.
func (s *Server) RescheduleInterview(ctx echo.Context) error {
	a, interviewID, err := actorAndInterviewID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req RescheduleInterviewRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}

	schedule, err := parseSchedule(req.Day, req.TimeOfDay)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewRescheduleInterviewCommand(interviewID, a, schedule, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.rescheduleInterviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteInterview handles POST /api/v1/interviews/:id/complete.
func (s *Server) CompleteInterview(ctx echo.Context) error {
	a, interviewID, err := actorAndInterviewID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCompleteInterviewCommand(interviewID, a)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.completeInterviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkHired handles POST /api/v1/interviews/:id/hire.
func (s *Server) MarkHired(ctx echo.Context) error {
	a, interviewID, err := actorAndInterviewID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewMarkHiredCommand(interviewID, a)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.markHiredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitFeedback handles POST /api/v1/interviews/:id/feedback.
func (s *Server) SubmitFeedback(ctx echo.Context) error {
	a, interviewID, err := actorAndInterviewID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req SubmitFeedbackRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}

	feedbackID := kernel.NewUUID()
	cmd, err := commands.NewSubmitFeedbackCommand(feedbackID, interviewID, a,
		req.Rating, req.Comments, req.Strengths, req.Improvements, req.WouldHireAgain)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.submitFeedbackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitFeedbackResponse{ID: feedbackID.String()})
}

// GetInterviews handles GET /api/v1/interviews.
// Employers and providers see their own interviews, admins see all.
func (s *Server) GetInterviews(ctx echo.Context) error {
	a, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var query queries.GetInterviewsQuery
	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, statusErr := interview.StatusFromString(statusParam)
		if statusErr != nil {
			return errorJSON(ctx, errs.NewValueIsInvalidError("status"))
		}
		query, err = queries.NewGetInterviewsQueryWithStatus(a, status)
	} else {
		query, err = queries.NewGetInterviewsQuery(a)
	}
	if err != nil {
		return errorJSON(ctx, err)
	}

	interviews, err := s.getInterviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]InterviewResponse, len(interviews))
	for i, item := range interviews {
		var officeLocationID *string
		if item.OfficeLocationID != nil {
			id := item.OfficeLocationID.String()
			officeLocationID = &id
		}

		response[i] = InterviewResponse{
			ID:               item.ID.String(),
			EmployerID:       item.EmployerID.String(),
			ProviderID:       item.ProviderID.String(),
			OfficeLocationID: officeLocationID,
			Day:              item.Day.Format("2006-01-02"),
			TimeOfDay:        item.TimeOfDay,
			Status:           item.Status,
			IsHired:          item.IsHired,
			CreatedAt:        item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOfficeLocations handles GET /api/v1/office-locations.
func (s *Server) GetOfficeLocations(ctx echo.Context) error {
	query := queries.NewGetOfficeLocationsQuery()

	locations, err := s.getOfficeLocationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]OfficeLocationResponse, len(locations))
	for i, location := range locations {
		response[i] = OfficeLocationResponse{
			ID:      location.ID.String(),
			Name:    location.Name,
			Address: location.Address,
			City:    location.City,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProviderFeedback handles GET /api/v1/providers/:id/feedback.
func (s *Server) GetProviderFeedback(ctx echo.Context) error {
	providerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("id"))
	}

	query, err := queries.NewGetProviderFeedbackQuery(providerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	feedbacks, err := s.getProviderFeedbackHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]FeedbackResponse, len(feedbacks))
	for i, feedback := range feedbacks {
		response[i] = FeedbackResponse{
			ID:             feedback.ID.String(),
			InterviewID:    feedback.InterviewID.String(),
			Rating:         feedback.Rating,
			Comments:       feedback.Comments,
			Strengths:      feedback.Strengths,
			Improvements:   feedback.Improvements,
			WouldHireAgain: feedback.WouldHireAgain,
			CreatedAt:      feedback.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorFromHeaders builds the acting user from the gateway-set identity
// headers.
func actorFromHeaders(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
	if err != nil {
		return actor.Actor{}, errs.NewValueIsRequiredError("X-User-Id")
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get("X-User-Role"))
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidError("X-User-Role")
	}

	return actor.NewActor(id, role)
}

func actorAndInterviewID(ctx echo.Context) (actor.Actor, kernel.UUID, error) {
	a, err := actorFromHeaders(ctx)
	if err != nil {
		return actor.Actor{}, kernel.UUID{}, err
	}

	interviewID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return actor.Actor{}, kernel.UUID{}, errs.NewValueIsInvalidError("id")
	}

	return a, interviewID, nil
}

// parseSchedule combines the day and time-of-day request fields into a
// schedule value.
func parseSchedule(day string, timeOfDay string) (kernel.Schedule, error) {
	parsedDay, err := time.Parse("2006-01-02", day)
	if err != nil {
		return kernel.Schedule{}, errs.NewValueIsInvalidError("day")
	}

	parsedTime, err := kernel.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return kernel.Schedule{}, errs.NewValueIsInvalidError("time_of_day")
	}

	return kernel.NewSchedule(parsedDay, parsedTime)
}

// errorJSON maps domain error kinds to HTTP statuses.
func errorJSON(ctx echo.Context, err error) error {
	return ctx.JSON(statusForError(err), ErrorResponse{
		Code:    statusForError(err),
		Message: err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
