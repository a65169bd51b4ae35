package services_test

import (
	"testing"
	"time"

	"riderspool/internal/core/domain/model/actor"
	"riderspool/internal/core/domain/model/interview"
	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeInterview(t *testing.T, employerID, providerID kernel.UUID) *interview.Interview {
	t.Helper()
	timeOfDay, err := kernel.NewTimeOfDay(9, 0)
	require.NoError(t, err)
	schedule, err := kernel.NewSchedule(time.Now().UTC().AddDate(0, 0, 3), timeOfDay)
	require.NoError(t, err)
	i, err := interview.NewInterview(kernel.NewUUID(), employerID, providerID, schedule, nil, "")
	require.NoError(t, err)
	return i
}

func makeActor(t *testing.T, id kernel.UUID, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func TestAccessPolicyAuthorizeCreate(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("should allow any employer", func(t *testing.T) {
		employer := makeActor(t, kernel.NewUUID(), actor.RoleEmployer)

		assert.NoError(t, policy.AuthorizeCreate(employer))
	})

	t.Run("should deny providers", func(t *testing.T) {
		provider := makeActor(t, kernel.NewUUID(), actor.RoleProvider)

		err := policy.AuthorizeCreate(provider)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied: create")
	})

	t.Run("should fail for unconstructed actor", func(t *testing.T) {
		var zero actor.Actor

		require.Error(t, policy.AuthorizeCreate(zero))
	})
}

func TestAccessPolicyAuthorize(t *testing.T) {
	policy := services.NewAccessPolicy()
	employerID := kernel.NewUUID()
	providerID := kernel.NewUUID()

	employer := makeActor(t, employerID, actor.RoleEmployer)
	provider := makeActor(t, providerID, actor.RoleProvider)
	otherEmployer := makeActor(t, kernel.NewUUID(), actor.RoleEmployer)
	otherProvider := makeActor(t, kernel.NewUUID(), actor.RoleProvider)

	t.Run("confirm is provider only", func(t *testing.T) {
		i := makeInterview(t, employerID, providerID)

		assert.NoError(t, policy.Authorize(provider, interview.ActionConfirm, i))

		err := policy.Authorize(employer, interview.ActionConfirm, i)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied: confirm (only the interview's provider may confirm)")

		require.Error(t, policy.Authorize(otherProvider, interview.ActionConfirm, i))
	})

	t.Run("cancel and reschedule allow either party", func(t *testing.T) {
		i := makeInterview(t, employerID, providerID)

		assert.NoError(t, policy.Authorize(employer, interview.ActionCancel, i))
		assert.NoError(t, policy.Authorize(provider, interview.ActionCancel, i))
		assert.NoError(t, policy.Authorize(employer, interview.ActionReschedule, i))
		assert.NoError(t, policy.Authorize(provider, interview.ActionReschedule, i))

		err := policy.Authorize(otherEmployer, interview.ActionCancel, i)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied: cancel")
	})

	t.Run("complete, mark hired and feedback are employer only", func(t *testing.T) {
		i := makeInterview(t, employerID, providerID)

		for _, action := range []interview.Action{
			interview.ActionComplete,
			interview.ActionMarkHired,
			interview.ActionSubmitFeedback,
		} {
			assert.NoError(t, policy.Authorize(employer, action, i))

			err := policy.Authorize(provider, action, i)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "permission denied: "+action.String())

			require.Error(t, policy.Authorize(otherEmployer, action, i))
		}
	})

	t.Run("a provider with the employer's ID is still denied employer actions", func(t *testing.T) {
		i := makeInterview(t, employerID, providerID)
		impostor := makeActor(t, employerID, actor.RoleProvider)

		require.Error(t, policy.Authorize(impostor, interview.ActionComplete, i))
	})

	t.Run("should reject unknown action", func(t *testing.T) {
		i := makeInterview(t, employerID, providerID)

		err := policy.Authorize(employer, interview.ActionUnknown, i)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid: action")
	})
}
