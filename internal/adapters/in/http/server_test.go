package http

import (
	"errors"
	"net/http"
	"testing"

	"riderspool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "object not found maps to 404",
			err:  errs.NewObjectNotFoundError("interview", "8f14e45f"),
			want: http.StatusNotFound,
		},
		{
			name: "permission denied maps to 403",
			err:  errs.NewPermissionDeniedError("confirm", "only the provider may confirm"),
			want: http.StatusForbidden,
		},
		{
			name: "invalid transition maps to 409",
			err:  errs.NewInvalidTransitionError("confirm", "Cancelled"),
			want: http.StatusConflict,
		},
		{
			name: "duplicate feedback maps to 409",
			err: errs.NewInvalidTransitionErrorWithCause("submit feedback", "Completed",
				errors.New("feedback already submitted for this interview")),
			want: http.StatusConflict,
		},
		{
			name: "required value maps to 400",
			err:  errs.NewValueIsRequiredError("X-User-Id"),
			want: http.StatusBadRequest,
		},
		{
			name: "invalid value maps to 400",
			err:  errs.NewValueIsInvalidError("status"),
			want: http.StatusBadRequest,
		},
		{
			name: "out of range value maps to 400",
			err:  errs.NewValueIsOutOfRangeError("rating", 6, 1, 5),
			want: http.StatusBadRequest,
		},
		{
			name: "unclassified error maps to 500",
			err:  errors.New("connection reset"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}
