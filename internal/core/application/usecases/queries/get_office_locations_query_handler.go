package queries

import (
	"context"

	"riderspool/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOfficeLocationsQueryHandler lists active office locations.
// Deactivated locations stay out of the catalogue but remain referenced
// by historical interviews.
type GetOfficeLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetOfficeLocationsQueryHandler creates a handler for catalogue queries.
// Requires a GORM database connection for query execution.
func NewGetOfficeLocationsQueryHandler(db *gorm.DB) GetOfficeLocationsQueryHandler {
	return GetOfficeLocationsQueryHandler{db: db}
}

// Handle executes the catalogue query.
// Returns active locations sorted by city, then name.
func (h GetOfficeLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetOfficeLocationsQuery,
) ([]GetOfficeLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			city
		FROM office_locations
		WHERE is_active
		ORDER BY city, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]GetOfficeLocationsQueryResponse, 0)
	for rows.Next() {
		var resp GetOfficeLocationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Address,
			&resp.City,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		locations = append(locations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
