package queries_test

import (
	"testing"

	"riderspool/internal/core/application/usecases/queries"
	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetInterviewsQuery_Valid(t *testing.T) {
	a, err := actor.NewActor(kernel.NewUUID(), actor.RoleEmployer)
	require.NoError(t, err)

	query, err := queries.NewGetInterviewsQuery(a)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, a.ID(), query.Actor().ID())
}

func TestNewGetInterviewsQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewGetInterviewsQuery(actor.Actor{})
	require.Error(t, err)
}

func TestNewGetInterviewsQueryWithStatus_Valid(t *testing.T) {
	a, err := actor.NewActor(kernel.NewUUID(), actor.RoleProvider)
	require.NoError(t, err)

	query, err := queries.NewGetInterviewsQueryWithStatus(a, interview.StatusConfirmed)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.Status())
	assert.Equal(t, interview.StatusConfirmed, *query.Status())
}

func TestNewGetInterviewsQueryWithStatus_InvalidStatus(t *testing.T) {
	a, err := actor.NewActor(kernel.NewUUID(), actor.RoleProvider)
	require.NoError(t, err)

	_, err = queries.NewGetInterviewsQueryWithStatus(a, interview.StatusUnknown)
	require.Error(t, err)
}

func TestGetInterviewsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetInterviewsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetInterviewsQueryIsNotConstructed)
}
