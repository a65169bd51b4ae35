package kernel_test

import (
	"testing"
	"time"

	"riderspool/internal/core/domain/model/kernel"
	"riderspool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFileNewTimeOfDay(t *testing.T) {
	t.Run("should create valid time of day", func(t *testing.T) {
		tod, err := kernel.NewTimeOfDay(14, 30)

		require.NoError(t, err)
		require.NoError(t, tod.Validate())
		assert.Equal(t, 14, tod.Hour())
		assert.Equal(t, 30, tod.Minute())
		assert.Equal(t, "14:30", tod.String())
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		for _, tc := range []struct{ hour, minute int }{
			{0, 0},
			{23, 59},
		} {
			tod, err := kernel.NewTimeOfDay(tc.hour, tc.minute)
			require.NoError(t, err)
			require.NoError(t, tod.Validate())
		}
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		for _, tc := range []struct{ hour, minute int }{
			{-1, 0},
			{24, 0},
			{12, -1},
			{12, 60},
		} {
			_, err := kernel.NewTimeOfDay(tc.hour, tc.minute)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var tod kernel.TimeOfDay

		require.Error(t, tod.Validate())
	})
}

func TestScheduleFileParseTimeOfDay(t *testing.T) {
	t.Run("should parse valid string", func(t *testing.T) {
		tod, err := kernel.ParseTimeOfDay("09:05")

		require.NoError(t, err)
		assert.Equal(t, 9, tod.Hour())
		assert.Equal(t, 5, tod.Minute())
	})

	t.Run("should reject malformed string", func(t *testing.T) {
		for _, s := range []string{"", "25:00", "9:5pm", "noon"} {
			_, err := kernel.ParseTimeOfDay(s)
			require.Error(t, err, "input %q", s)
		}
	})
}

func TestNewSchedule(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid schedule", func(t *testing.T) {
		tod, _ := kernel.NewTimeOfDay(10, 0)

		schedule, err := kernel.NewSchedule(day, tod)

		require.NoError(t, err)
		require.NoError(t, schedule.Validate())
		assert.Equal(t, day, schedule.Day())
		assert.True(t, tod.IsEqual(schedule.TimeOfDay()))
		assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), schedule.At())
		assert.Equal(t, "2026-09-01 10:00", schedule.String())
	})

	t.Run("should truncate clock component of day", func(t *testing.T) {
		tod, _ := kernel.NewTimeOfDay(8, 15)
		noisyDay := time.Date(2026, 9, 1, 17, 45, 3, 0, time.UTC)

		schedule, err := kernel.NewSchedule(noisyDay, tod)

		require.NoError(t, err)
		assert.Equal(t, day, schedule.Day())
		assert.Equal(t, time.Date(2026, 9, 1, 8, 15, 0, 0, time.UTC), schedule.At())
	})

	t.Run("should fail with zero day", func(t *testing.T) {
		tod, _ := kernel.NewTimeOfDay(10, 0)

		_, err := kernel.NewSchedule(time.Time{}, tod)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed time of day", func(t *testing.T) {
		var tod kernel.TimeOfDay

		_, err := kernel.NewSchedule(day, tod)

		require.Error(t, err)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var schedule kernel.Schedule

		require.Error(t, schedule.Validate())
	})

	t.Run("IsEqual compares day and time", func(t *testing.T) {
		tod1, _ := kernel.NewTimeOfDay(10, 0)
		tod2, _ := kernel.NewTimeOfDay(11, 0)
		s1, _ := kernel.NewSchedule(day, tod1)
		s2, _ := kernel.NewSchedule(day, tod1)
		s3, _ := kernel.NewSchedule(day, tod2)

		assert.True(t, s1.IsEqual(s2))
		assert.False(t, s1.IsEqual(s3))
	})
}
