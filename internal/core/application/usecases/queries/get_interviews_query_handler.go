package queries

import (
	"context"
	"strings"
	"time"

	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInterviewsQueryHandler lists interviews from the database, scoped by
// the acting user's role. Results are ordered by scheduled day, newest
// first, so upcoming interviews come before historical ones.
type GetInterviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetInterviewsQueryHandler creates a handler for interview listings.
// Requires a GORM database connection for query execution.
func NewGetInterviewsQueryHandler(db *gorm.DB) GetInterviewsQueryHandler {
	return GetInterviewsQueryHandler{db: db}
}

// Handle executes the interview listing query.
// Employers see interviews they booked, providers see interviews booked
// with them, admins see every interview.
func (h GetInterviewsQueryHandler) Handle(
	ctx context.Context,
	query GetInterviewsQuery,
) ([]GetInterviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	baseQuery := `
		SELECT
			id,
			employer_id,
			provider_id,
			office_location_id,
			day,
			hour,
			minute,
			status,
			is_hired,
			created_at
		FROM interviews
	`

	a := query.Actor()
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	switch {
	case a.Role().IsAdmin():
		// admins see everything
	case a.Role().IsEmployer():
		conditions = append(conditions, "employer_id = ?")
		args = append(args, a.ID().Bytes())
	default:
		conditions = append(conditions, "provider_id = ?")
		args = append(args, a.ID().Bytes())
	}
	if filter := query.Status(); filter != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*filter))
	}

	sqlQuery := baseQuery
	if len(conditions) > 0 {
		sqlQuery += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	sqlQuery += ` ORDER BY day DESC, created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interviews := make([]GetInterviewsQueryResponse, 0)
	for rows.Next() {
		var resp GetInterviewsQueryResponse
		var id, employerID, providerID uuid.UUID
		var officeLocationID *uuid.UUID
		var day, createdAt time.Time
		var hour, minute int
		var status int
		var isHired bool

		err = rows.Scan(
			&id,
			&employerID,
			&providerID,
			&officeLocationID,
			&day,
			&hour,
			&minute,
			&status,
			&isHired,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.EmployerID, err = kernel.UUIDFromBytes(employerID[:]); err != nil {
			return nil, err
		}
		if resp.ProviderID, err = kernel.UUIDFromBytes(providerID[:]); err != nil {
			return nil, err
		}
		if officeLocationID != nil {
			officeID, idErr := kernel.UUIDFromBytes(officeLocationID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.OfficeLocationID = &officeID
		}

		timeOfDay, todErr := kernel.NewTimeOfDay(hour, minute)
		if todErr != nil {
			return nil, todErr
		}

		resp.Day = day
		resp.TimeOfDay = timeOfDay.String()
		resp.Status = interview.Status(status).String()
		resp.IsHired = isHired
		resp.CreatedAt = createdAt
		interviews = append(interviews, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return interviews, nil
}
